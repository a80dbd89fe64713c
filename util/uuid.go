// Package util provides utility functions for the order system.
package util

import "github.com/google/uuid"

// GenerateUUID returns a RFC4122-compliant v4 UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}
