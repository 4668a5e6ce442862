package field

import (
	"context"
	"fmt"
	"log/slog"
)

// Diagnostics receives non-fatal warnings raised while handling a field,
// such as a relation action with no handler.
type Diagnostics interface {
	Warn(ctx context.Context, msg string, args ...any)
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(ctx context.Context, msg string, args ...any)

// Warn calls f.
func (f DiagnosticsFunc) Warn(ctx context.Context, msg string, args ...any) {
	f(ctx, msg, args...)
}

// SlogDiagnostics writes warnings to a structured logger.
type SlogDiagnostics struct {
	logger *slog.Logger
}

// NewSlogDiagnostics wraps logger, falling back to slog.Default when nil.
func NewSlogDiagnostics(logger *slog.Logger) *SlogDiagnostics {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogDiagnostics{logger: logger}
}

// Warn logs msg at warn level.
func (d *SlogDiagnostics) Warn(ctx context.Context, msg string, args ...any) {
	d.logger.WarnContext(ctx, msg, args...)
}

// missingHandler stands in for an OnAdd/OnEdit the form did not supply. It
// warns and does nothing else.
func missingHandler(diagnostics Diagnostics, action Action) ActionHandler {
	prop := "OnAdd"
	if action == ActionEdit {
		prop = "OnEdit"
	}
	msg := fmt.Sprintf("cannot open the %s view: the parent form did not provide the %s prop", action, prop)
	return func(ctx context.Context, props Props) error {
		diagnostics.Warn(ctx, msg,
			slog.String("field", props.Input.Name),
			slog.String("action", string(action)),
		)
		return nil
	}
}
