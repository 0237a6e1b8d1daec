// Package env reads plain environment variables for the few knobs that sit
// outside the CORAL_-prefixed config structs, like the logger's LOG_FORMAT
// switch.
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
