package diagram

import (
	"context"
	"log/slog"
)

// nopHandler discards every record. Enabled returns false so callers skip
// building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger for recompute diagnostics. A nil logger keeps
// the controller silent, which is the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l == nil {
			l = newNopLogger()
		}
		c.logger = l
	}
}
