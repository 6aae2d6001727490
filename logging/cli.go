// Package logging provides the terminal slog handler used by the training commands.
package logging

import "context"
import "fmt"
import "io"
import "log/slog"
import "os"
import "strings"
import "sync"

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// CLIHandler is a slog.Handler printing one colored line per record.
type CLIHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	prefix string
	attrs  []slog.Attr
	color  bool
}

// NewCLIHandler makes a colored handler writing records at or above level.
func NewCLIHandler(w io.Writer, level slog.Leveler) *CLIHandler {
	return &CLIHandler{
		mu:     new(sync.Mutex),
		writer: w,
		level:  level,
		color:  true,
	}
}

// NoColor disables the terminal color escapes.
func (h *CLIHandler) NoColor() *CLIHandler {
	h.color = false
	return h
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if h.prefix != "" {
		b.WriteString("[" + h.prefix + "] ")
	}
	b.WriteString(r.Message)

	var attrs []string
	for _, a := range h.attrs {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})
	if len(attrs) > 0 {
		b.WriteString(": " + strings.Join(attrs, " "))
	}

	msg := b.String()
	if h.color {
		if r.Level >= slog.LevelError {
			msg = colorRed + msg + colorReset
		} else {
			msg = colorGreen + msg + colorReset
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	o := *h
	o.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &o
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	o := *h
	o.prefix = name
	return &o
}

// NewCLILogger makes a logger writing to stderr at the named level.
func NewCLILogger(level string) *slog.Logger {
	return slog.New(NewCLIHandler(os.Stderr, ParseLogLevel(level)))
}

// Discard is a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(NewCLIHandler(io.Discard, slog.Level(100)))
}

// ParseLogLevel converts a level name to slog.Level, slog.LevelInfo when unrecognized.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
