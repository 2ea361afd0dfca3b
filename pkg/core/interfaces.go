package core

// Logger receives render progress messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all messages
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
