package logger

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var err error
	logger, err = New(env)
	if err != nil {
		log.Fatal("logger init", err)
	}
}

// New builds a zap logger for the given environment: "dev" or "prod".
func New(env string) (*zap.Logger, error) {
	switch env {
	case "dev":
		return zap.NewDevelopment()
	case "prod":
		return zap.NewProduction()
	}
	return nil, errors.Errorf("unknown log env %q", env)
}

// Logger returns the process-wide logger, for components that take one explicitly.
func Logger() *zap.Logger {
	return logger
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

func Sync() {
	_ = logger.Sync()
}
