package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler duplicates each record to every child handler. The server
// runs one for the stdout JSON stream and one for the Postgres system_logs
// sink, each with its own level threshold.
type MultiHandler struct {
	children []slog.Handler
}

func NewMultiHandler(children ...slog.Handler) *MultiHandler {
	return &MultiHandler{children: children}
}

// Enabled reports true when any child would accept the level, so a record
// above only one child's threshold still flows.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.children {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every interested child. One child failing
// does not stop delivery to the rest; the errors are joined.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range m.children {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	children := make([]slog.Handler, len(m.children))
	for i, h := range m.children {
		children[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{children: children}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	children := make([]slog.Handler, len(m.children))
	for i, h := range m.children {
		children[i] = h.WithGroup(name)
	}
	return &MultiHandler{children: children}
}
