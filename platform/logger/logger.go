package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap that threads a context through
// every call site so request-scoped fields can be attached later
// without touching callers.
type Logger struct {
	l *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{l: zap.NewNop()}
)

// Init builds the global logger. level is one of debug/info/warn/error,
// asJSON switches between the production JSON encoder and a console
// encoder for local runs.
func Init(level string, asJSON bool) error {
	const op = "logger.Init"

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%s: parse level %q: %w", op, level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)

	mu.Lock()
	global = &Logger{l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

// L returns the global logger.
func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns a child of the global logger carrying extra fields.
func With(fields ...Field) *Logger {
	return L().With(fields...)
}

func (lg *Logger) With(fields ...Field) *Logger {
	return &Logger{l: lg.l.With(fields...)}
}

func (lg *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	lg.l.Debug(msg, fields...)
}

func (lg *Logger) Info(_ context.Context, msg string, fields ...Field) {
	lg.l.Info(msg, fields...)
}

func (lg *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	lg.l.Warn(msg, fields...)
}

func (lg *Logger) Error(_ context.Context, msg string, fields ...Field) {
	lg.l.Error(msg, fields...)
}

func (lg *Logger) Fatal(_ context.Context, msg string, fields ...Field) {
	lg.l.Fatal(msg, fields...)
}

// Sync flushes buffered log entries.
func (lg *Logger) Sync() error { return lg.l.Sync() }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }
func Fatal(ctx context.Context, msg string, fields ...Field) { L().Fatal(ctx, msg, fields...) }
