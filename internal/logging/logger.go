// Package logging provides leveled logging and step tracing for the CLI.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A TraceWriter for structured JSONL per-step traces
//
// The engine itself never logs; tracing happens in the CLI layer from the
// runlog the engine returns, so a run stays a pure value computation.
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// LevelTrace is a custom slog level below Debug for full per-step content.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// TraceWriter writes per-step trace records as JSONL. It is safe for
// concurrent use. A nil TraceWriter is safe to use; all methods are no-ops
// on a nil receiver.
type TraceWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTraceWriter creates a trace writer emitting to w. Returns nil when w
// is nil, so callers can pass through an unset trace destination.
func NewTraceWriter(w io.Writer) *TraceWriter {
	if w == nil {
		return nil
	}
	return &TraceWriter{w: w}
}

// Write emits one record as a single JSONL line. Marshal failures are
// dropped. Safe to call on a nil receiver.
func (tw *TraceWriter) Write(record any) {
	if tw == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	data = append(data, '\n')

	tw.mu.Lock()
	defer tw.mu.Unlock()
	_, _ = tw.w.Write(data)
}
