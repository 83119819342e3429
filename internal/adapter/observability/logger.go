// Package observability provides the structured logger wired into the hook
// when diagnostics are explicitly enabled. The hook's output contract keeps
// stderr empty unless a context block is injected, so logging is off by
// default and only an operator turns it on.
package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// LogLevel defines the logging verbosity level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
)

// LogFormat defines the output format for log lines.
type LogFormat int

const (
	LogFormatHuman LogFormat = iota
	LogFormatJSON
)

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogLevelDebug
	case "warning", "warn":
		return LogLevelWarning
	default:
		return LogLevelInfo
	}
}

// ParseFormat maps a config string to a format, defaulting to human.
func ParseFormat(s string) LogFormat {
	if s == "json" {
		return LogFormatJSON
	}
	return LogFormatHuman
}

// Logger writes leveled, structured log lines to a single writer.
type Logger struct {
	out    io.Writer
	level  LogLevel
	format LogFormat
	now    func() time.Time
}

// NewLogger creates a logger writing to out with the given level and format.
func NewLogger(out io.Writer, level LogLevel, format LogFormat) *Logger {
	return &Logger{out: out, level: level, format: format, now: time.Now}
}

// SetClock overrides the timestamp source. Used by tests for deterministic
// output.
func (l *Logger) SetClock(now func() time.Time) {
	l.now = now
}

// LogInfo logs an informational message with structured fields.
func (l *Logger) LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelInfo, "info", message, fields)
}

// LogWarning logs a warning message with structured fields.
func (l *Logger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelWarning, "warning", message, fields)
}

// LogDebug logs a debug message with structured fields.
func (l *Logger) LogDebug(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelDebug, "debug", message, fields)
}

func (l *Logger) write(level LogLevel, label, message string, fields map[string]interface{}) {
	if level < l.level {
		return
	}

	if l.format == LogFormatJSON {
		entry := map[string]interface{}{
			"level":     label,
			"timestamp": l.now().UTC().Format(time.RFC3339),
			"message":   message,
		}
		for k, v := range fields {
			entry[k] = v
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return
		}
		fmt.Fprintln(l.out, string(data))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", strings.ToUpper(label), message)
	for _, k := range sortedKeys(fields) {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	fmt.Fprintln(l.out, b.String())
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
