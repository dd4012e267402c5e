package logging

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// Init configures the global logger. Debug enables console output for
// every step of the audit pipeline; otherwise only warnings surface.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	l, err := cfg.Build()
	if err != nil {
		panic("initializing logger: " + err.Error())
	}
	logger = l.Sugar()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	logger.Warnw(msg, keysAndValues...)
}
