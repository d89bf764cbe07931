package b64

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger used by the store and other components
// built on the codec. The codec itself never logs.
// Adapters for logrus, zap and slog live under log/.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
