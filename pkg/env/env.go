// Package env reads plain environment variables for the few knobs that sit
// outside the prefixed config struct, such as the log output format.
package env

import "os"

// Get returns the value of the environment variable, or fallback when unset
// or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
