package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateOperationID creates a short, human-readable operation ID.
// Format: {operation}-{subject}-{8charHexUUID}
//
// Example:
//   - Input: operation="load", subject="Falcon"
//   - Output: "load-falcon-a3f8e2b1"
//
// The subject is lowercased and whitespace becomes "-", so "Millennium Falcon"
// yields "load-millennium-falcon-a3f8e2b1".
func GenerateOperationID(operation, subject string) string {
	return operation + "-" + slugify(subject) + "-" + generateShortUUID()
}

func slugify(subject string) string {
	fields := strings.Fields(strings.ToLower(subject))
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.Join(fields, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
