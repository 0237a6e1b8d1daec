// Package types holds the wire envelopes shared by every endpoint: successes
// wrap their payload under "data", failures under "error" with a stable code
// from pkg/errors.
package types

// SuccessEnvelope wraps any successful response payload, including the raw
// document lists returned by the browse endpoints.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error shape. Details carries field-level
// validation messages where the code allows it.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError for transport.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
