// Package docstore describes queries against the document store as a small
// predicate tree and executes them over Elasticsearch. Predicates are pure
// values; only the Client talks to the store.
package docstore

import "encoding/json"

// IDField is the key under which the store-assigned identifier is surfaced.
const IDField = "_id"

// Document is a schemaless record as stored in and returned by the store.
type Document map[string]any

// ID returns the store-assigned identifier, if present.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Float returns the numeric value at key, or fallback when the key is absent
// or holds a non-numeric value.
func (d Document) Float(key string, fallback float64) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return fallback
}
