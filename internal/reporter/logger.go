package reporter

type Logger interface {
	Debug(message string)

	// This level and up is worth surfacing to users diagnosing their crash
	// reporting setup
	Info(message string)

	// If an error is logged, a report side channel (crash file, source
	// context) failed. The stderr report itself never errors.
	Error(message string)
}

type NoopLogger struct{}

func (l *NoopLogger) Debug(message string) {}

func (l *NoopLogger) Info(message string) {}

func (l *NoopLogger) Error(message string) {}
