package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger shared by the landing services.
// - package-level Debugf/Infof/Warnf/Errorf/Fatalf and Init(level)
// - backed by zap; LOG_FORMAT=json switches to the production encoder

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar  = build(os.Getenv("LOG_FORMAT"))
	exitFn = os.Exit
)

func build(format string) *zap.SugaredLogger {
	var cfg zap.Config
	if strings.EqualFold(format, "json") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.Level = level
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		level.SetLevel(zapcore.FatalLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Use swaps the underlying zap logger and returns a func restoring the
// previous one. The swapped-in logger is still filtered by Init's level.
func Use(l *zap.Logger) (restore func()) {
	mu.Lock()
	prev := sugar
	sugar = l.WithOptions(zap.AddCallerSkip(1), zap.IncreaseLevel(level)).Sugar()
	mu.Unlock()
	return func() {
		mu.Lock()
		sugar = prev
		mu.Unlock()
	}
}

// L returns the underlying zap logger for code that wants structured fields.
func L() *zap.Logger {
	return current().Desugar().WithOptions(zap.AddCallerSkip(-1))
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { current().Debugf(format, v...) }

func Infof(format string, v ...interface{}) { current().Infof(format, v...) }

func Warnf(format string, v ...interface{}) { current().Warnf(format, v...) }

func Errorf(format string, v ...interface{}) { current().Errorf(format, v...) }

// exitHook runs after a fatal entry is written.
type exitHook struct{}

func (exitHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) { exitFn(1) }

// Fatalf logs at fatal level and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	current().WithOptions(zap.WithFatalHook(exitHook{})).Fatalf(format, v...)
}

// Sync flushes buffered log entries.
func Sync() { _ = current().Sync() }

// LevelString returns the current level as text.
func LevelString() string {
	return level.Level().String()
}
