package helpers

import (
	"strings"
	"sync"
	"time"
)

// LogEntry is one captured call to OperationLogger.Log
type LogEntry struct {
	Level     string
	Message   string
	Metadata  map[string]interface{}
	Timestamp time.Time
}

// CapturingLogger is an in-memory OperationLogger for testing
type CapturingLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// NewCapturingLogger creates a new capturing logger
func NewCapturingLogger() *CapturingLogger {
	return &CapturingLogger{}
}

// Log records the entry (in-memory only for testing)
func (l *CapturingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{
		Level:     level,
		Message:   message,
		Metadata:  metadata,
		Timestamp: time.Now(),
	})
}

// ByLevel returns the entries logged at level
func (l *CapturingLogger) ByLevel(level string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	filtered := make([]LogEntry, 0)
	for _, entry := range l.Entries {
		if entry.Level == level {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// HasMessageContaining reports whether any entry at level contains substr
func (l *CapturingLogger) HasMessageContaining(level, substr string) bool {
	for _, entry := range l.ByLevel(level) {
		if strings.Contains(entry.Message, substr) {
			return true
		}
	}
	return false
}
