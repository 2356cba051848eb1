package log

// Logger is the interface hosts implement to receive diagnostic events.
// Pass nil or NoopLogger to disable diagnostics.
type Logger interface {
	// Log records a diagnostic event. Implementations must be thread-safe.
	// The event should be processed quickly or queued; blocking slows the
	// decode pass.
	Log(event Event)
}

// NoopLogger discards all events. Use when diagnostics are disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

// MultiLogger sends events to multiple loggers. Useful when you want both
// console output (via SlogAdapter) and file output (via FileLogger)
// simultaneously.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends events to all provided
// loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
