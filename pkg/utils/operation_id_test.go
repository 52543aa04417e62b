package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOperationID(t *testing.T) {
	tests := []struct {
		operation string
		subject   string
		pattern   string
	}{
		{"load", "Falcon", `^load-falcon-[0-9a-f]{8}$`},
		{"fly", "Millennium  Falcon", `^fly-millennium-falcon-[0-9a-f]{8}$`},
		{"unload", "   ", `^unload-unknown-[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		id := GenerateOperationID(tt.operation, tt.subject)
		assert.Regexp(t, regexp.MustCompile(tt.pattern), id)
	}
}

func TestGenerateOperationID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateOperationID("load", "Falcon")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
