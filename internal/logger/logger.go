package logger

import (
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init wires the package-level logger. Must be called once at startup;
// the zero value falls back to a no-op logger so tests stay quiet.
func Init() {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	log = base.Sugar()
}

func get() *zap.SugaredLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return log
}

// Info logs a message with optional alternating key-value pairs.
func Info(msg string, keysAndValues ...interface{}) {
	get().Infow(msg, keysAndValues...)
}

func Infof(format string, v ...interface{}) {
	get().Infof(format, v...)
}

func Error(msg string, keysAndValues ...interface{}) {
	get().Errorw(msg, keysAndValues...)
}

func Errorf(format string, v ...interface{}) {
	get().Errorf(format, v...)
}

func Debug(msg string, keysAndValues ...interface{}) {
	get().Debugw(msg, keysAndValues...)
}

func Debugf(format string, v ...interface{}) {
	get().Debugf(format, v...)
}

func Fatal(msg string) {
	get().Fatal(msg)
}

func Fatalf(format string, v ...interface{}) {
	get().Fatalf(format, v...)
}

// SetForTesting swaps the backing logger and returns a restore func.
func SetForTesting(l *zap.SugaredLogger) func() {
	prev := log
	log = l
	return func() { log = prev }
}
