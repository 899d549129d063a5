// Package logger builds the zap logger shared by the service.
package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a JSON logger, or a console logger when development is set.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	return cfg.Build()
}

// Gorm routes gorm's SQL logging through l. Slow queries are reported at
// warn level.
func Gorm(l *zap.Logger, development bool) gormlogger.Interface {
	level := gormlogger.Warn
	if development {
		level = gormlogger.Info
	}
	return gormlogger.New(zap.NewStdLog(l.Named("gorm")), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
