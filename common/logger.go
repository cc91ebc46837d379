package common

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// InitLogger builds the process logger. Output always goes to stderr; when
// path is non-empty a size-rotated JSON file sink is added as well.
func InitLogger(path string, level zapcore.Level) *zap.Logger {
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			level,
		),
	}
	if path != "" {
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    64, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		})
		cores = append(cores,
			zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, level))
	}
	logger = zap.New(zapcore.NewTee(cores...))
	return logger
}

// Logger returns the process logger. It is a nop logger until InitLogger
// has been called.
func Logger() *zap.Logger {
	return logger
}
