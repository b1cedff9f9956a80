package people

import "go.uber.org/zap"

// RequestLogger is the interface used by [Client] for logging HTTP requests,
// pagination progress and errors. Its method set matches resty's logger, so
// the same implementation also receives the transport's retry warnings.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// ZapLogger adapts a zap SugaredLogger to [RequestLogger].
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger returns a [RequestLogger] writing to s. A nil s yields a
// logger that discards everything.
func NewZapLogger(s *zap.SugaredLogger) *ZapLogger {
	if s == nil {
		s = zap.NewNop().Sugar()
	}
	return &ZapLogger{s: s.With("component", "people-client")}
}

func (l *ZapLogger) Errorf(format string, v ...any) { l.s.Errorf(format, v...) }
func (l *ZapLogger) Warnf(format string, v ...any)  { l.s.Warnf(format, v...) }
func (l *ZapLogger) Debugf(format string, v ...any) { l.s.Debugf(format, v...) }
