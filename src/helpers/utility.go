package helpers

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a new random UUID as a string.
func GenerateUUID() string {
	return uuid.New().String()
}

// TruncateError bounds an error message for display at the service
// boundary. Driver errors can carry oversized internals that should not
// leak whole into a response.
func TruncateError(err error, max int) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if max > 0 && len(msg) > max {
		return msg[:max]
	}
	return msg
}
