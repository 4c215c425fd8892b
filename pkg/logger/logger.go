// Package logger provides centralized slog.Logger construction with
// configurable level and output format (text or JSON).
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextAttrs extracts request-scoped attributes, such as a request ID,
// from a context.
type ContextAttrs func(ctx context.Context) []slog.Attr

// Option configures a logger built by New or NewWithWriter.
type Option func(*options)

type options struct {
	addSource    bool
	contextAttrs ContextAttrs
	attrs        []slog.Attr
}

// WithSource adds the calling file and line to each record.
func WithSource() Option {
	return func(o *options) {
		o.addSource = true
	}
}

// WithContextAttrs adds the attributes f extracts from the context passed to
// the *Context logging methods.
func WithContextAttrs(f ContextAttrs) Option {
	return func(o *options) {
		o.contextAttrs = f
	}
}

// WithAttrs adds fixed attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New creates a *slog.Logger configured with the given level and format.
// Level: "debug", "info", "warn", "error" (default: "info").
// Format: "json" or "text" (default: "text").
// Output goes to stderr.
func New(level, format string, opts ...Option) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format, opts...)
}

// NewWithWriter creates a *slog.Logger writing to w.
func NewWithWriter(w io.Writer, level, format string, opts ...Option) *slog.Logger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: ParseLevel(level), AddSource: o.addSource}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}
	if o.contextAttrs != nil {
		handler = &contextHandler{Handler: handler, attrs: o.contextAttrs}
	}

	return slog.New(handler)
}

// ParseLevel converts a level string to slog.Level, ignoring case.
// Recognized values: "debug", "warn" or "warning", "error". Everything else
// returns LevelInfo.
func ParseLevel(level string) slog.Level {
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

type contextHandler struct {
	slog.Handler
	attrs ContextAttrs
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		r.AddAttrs(h.attrs(ctx)...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), attrs: h.attrs}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), attrs: h.attrs}
}
