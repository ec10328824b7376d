package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed diagnostic output
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational events
	LogLevelInfo
	// LogLevelWarn for recoverable anomalies
	LogLevelWarn
	// LogLevelError for failures that need attention
	LogLevelError
)

// Logger is the structured logging port used across the domain and
// infrastructure layers. Fields carry request and entity context.
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// Debug logs debug messages
	Debug(message string, fields map[string]any)
	// Info logs informational messages
	Info(message string, fields map[string]any)
	// Warn logs warning messages
	Warn(message string, fields map[string]any)
	// Error logs error messages
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
