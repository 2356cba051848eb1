package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostic events to an slog.Logger.
// Useful for development when you want to see decode diagnostics in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Faults and rejected capability
// updates log at Warn level, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.Uint64("tid", uint64(event.TID)),
		slog.String("category", event.Category.String()),
	}
	if event.PassID != "" {
		attrs = append(attrs, slog.String("pass_id", event.PassID))
	}

	level := slog.LevelDebug

	// Add type-specific attributes
	switch {
	case event.Record != nil:
		attrs = append(attrs,
			slog.Int("record_index", event.Record.Index),
			slog.Uint64("record_handle", uint64(event.Record.Handle)),
			slog.String("record_type", event.Record.Type.String()),
		)
		if event.Record.SensorID != 0 {
			attrs = append(attrs, slog.Uint64("sensor_id", uint64(event.Record.SensorID)))
		}
	case event.Fault != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.Int("record_index", event.Fault.Index),
			slog.String("record_type", event.Fault.Type.String()),
			slog.Int("offset", event.Fault.Offset),
			slog.String("reason", event.Fault.Reason),
		)
	case event.Capability != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.Int("expected_size", event.Capability.Expected),
			slog.Int("received_size", event.Capability.Received),
		)
	case event.State != nil:
		attrs = append(attrs, slog.String("state", event.State.Name))
		if event.State.Detail != "" {
			attrs = append(attrs, slog.String("detail", event.State.Detail))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "terminus", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
