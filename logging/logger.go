// api/logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// InitLogger builds the process logger: JSON to stdout plus files under the
// configured log directory. LOG_LEVEL overrides the default level.
func InitLogger(logDir string) {
	cfg := zap.NewProductionConfig()

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if level, err := zapcore.ParseLevel(raw); err == nil {
			cfg.Level.SetLevel(level)
		}
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		panic(err)
	}
	appLog := filepath.Join(logDir, "pulse.log")
	errLog := filepath.Join(logDir, "pulse_error.log")
	for _, p := range []string{appLog, errLog} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			file, err := os.Create(p)
			if err != nil {
				panic(err)
			}
			file.Close()
		}
	}

	cfg.OutputPaths = []string{"stdout", appLog}
	cfg.ErrorOutputPaths = []string{"stderr", errLog}

	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	Log, err = cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(Log)
}

// InitTestLogger wires a no-op logger so packages under test can log freely.
func InitTestLogger() {
	Log = zap.NewNop()
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

// WithContext returns a child logger carrying the given fields.
func WithContext(fields ...zap.Field) *zap.Logger {
	return Log.With(fields...)
}

func Sync() error {
	return Log.Sync()
}
