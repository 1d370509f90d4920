package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation  = "operation"
	KeyTool       = "tool"
	KeyEntityKind = "entity_kind"
	KeyEntityID   = "entity_id"
	KeyQuery      = "query"
	KeyLimit      = "limit"
	KeyShow       = "show"
	KeyDuration   = "duration"
	KeyStatus     = "status"
	KeyError      = "error"
	KeyTokens     = "tokens"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Tool returns a slog attribute for the MCP tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// EntityKind returns a slog attribute for the entity kind.
func EntityKind(kind string) slog.Attr {
	return slog.String(KeyEntityKind, kind)
}

// EntityID returns a slog attribute for an entity identifier.
func EntityID(id string) slog.Attr {
	return slog.String(KeyEntityID, id)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Duration returns a slog attribute for an operation duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Tokens returns a slog attribute for an estimated token count.
func Tokens(n int) slog.Attr {
	return slog.Int(KeyTokens, n)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizeToken returns a masked version of an API key for logging.
// It returns a length indicator without exposing any key content.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

// ParseLevel converts a level string to a slog.Level, defaulting to Info
// for empty or unrecognized values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the process-wide default logger.
//
// Stdio transports own stdout for protocol frames, so logs always go to
// stderr. The json format is intended for HTTP deployments; text is easier
// to read during local development.
func Setup(level, format string) *slog.Logger {
	return SetupWithWriter(os.Stderr, level, format)
}

// SetupWithWriter is Setup with an explicit output writer, for tests.
func SetupWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
