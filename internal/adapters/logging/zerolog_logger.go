package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/infrastructure/config"
)

// Ensure ZerologLogger implements the interface.
var _ common.OperationLogger = (*ZerologLogger)(nil)

// ZerologLogger adapts zerolog to common.OperationLogger
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger builds a logger writing to out. Text format uses the
// console writer; json writes one object per line.
func NewZerologLogger(app string, cfg config.LoggingConfig, out io.Writer) *ZerologLogger {
	if cfg.Format != "json" {
		_, isFile := out.(*os.File)
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isFile,
		}
	}

	logger := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("app", app).
		Logger()

	return &ZerologLogger{logger: logger}
}

// Log writes message at level with metadata as structured fields
func (l *ZerologLogger) Log(level, message string, metadata map[string]interface{}) {
	event := l.logger.WithLevel(parseLevel(level))
	if len(metadata) > 0 {
		event = event.Fields(metadata)
	}
	event.Msg(message)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
