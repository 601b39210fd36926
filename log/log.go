package log

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Time     = zap.Time
	Any      = zap.Any

	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
)

func ErrorField(err error) Field {
	return zap.Error(err)
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

type Logger struct {
	l *zap.Logger
}

// New creates a json logger writing to w
func New(w io.Writer, level Level, opts ...Option) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return newLogger(zapcore.NewJSONEncoder(encCfg), w, level, opts...)
}

// DevLogger creates a console logger writing to w
func DevLogger(w io.Writer, level Level, opts ...Option) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return newLogger(zapcore.NewConsoleEncoder(encCfg), w, level, opts...)
}

//nolint:whitespace // editor/linter issue
func newLogger(
	enc zapcore.Encoder, w io.Writer, level Level, opts ...Option,
) *Logger {
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return &Logger{l: zap.New(core, opts...)}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name)}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...)}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Sync() error {
	return l.l.Sync()
}

var std = &Logger{l: zap.NewNop()}

// Default returns the logger used by the package level functions
func Default() *Logger {
	return std
}

// ResetDefault replaces the logger used by the package level functions.
// Not safe to call while other goroutines are logging.
func ResetDefault(l *Logger) {
	std = l
	Debug = std.Debug
	Info = std.Info
	Warn = std.Warn
	Error = std.Error
	Fatal = std.Fatal
}

var (
	Debug = std.Debug
	Info  = std.Info
	Warn  = std.Warn
	Error = std.Error
	Fatal = std.Fatal
)

// Elapsed is a helper for log statements measuring durations
func Elapsed(start time.Time) Field {
	return Duration("elapsed", time.Since(start))
}

func Sync() error {
	return std.Sync()
}
