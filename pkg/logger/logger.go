package logger

import (
	"github.com/F2fX4553/polychat/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger. The zero value is a no-op logger,
// which keeps test wiring trivial.
type Logger struct {
	s *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	var zcfg zap.Config
	if cfg != nil && cfg.LoggerMode.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if cfg != nil && cfg.LoggerMode.Level != "" {
		level, err := zapcore.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	z, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{s: z.Sugar()}, nil
}

func (l Logger) Debug(msg string, keysAndValues ...interface{}) {
	if l.s != nil {
		l.s.Debugw(msg, keysAndValues...)
	}
}

func (l Logger) Debugf(format string, args ...interface{}) {
	if l.s != nil {
		l.s.Debugf(format, args...)
	}
}

func (l Logger) Info(msg string, keysAndValues ...interface{}) {
	if l.s != nil {
		l.s.Infow(msg, keysAndValues...)
	}
}

func (l Logger) Infof(format string, args ...interface{}) {
	if l.s != nil {
		l.s.Infof(format, args...)
	}
}

func (l Logger) Warn(msg string, keysAndValues ...interface{}) {
	if l.s != nil {
		l.s.Warnw(msg, keysAndValues...)
	}
}

func (l Logger) Error(msg string, keysAndValues ...interface{}) {
	if l.s != nil {
		l.s.Errorw(msg, keysAndValues...)
	}
}

func (l Logger) Errorf(format string, args ...interface{}) {
	if l.s != nil {
		l.s.Errorf(format, args...)
	}
}

func (l Logger) Sync() {
	if l.s != nil {
		_ = l.s.Sync()
	}
}
