package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/logger"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// busyTimeout lets concurrent writers wait for the lock instead of failing.
const busyTimeout = "_pragma=busy_timeout(5000)"

// Open connects to the sqlite database at path, creating its directory, and
// migrates the schema.
func Open(path string, log *zap.Logger, development bool) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(withPragma(path)), &gorm.Config{
		Logger: logger.Gorm(log, development),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := configure(db); err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.String("path", path))
	return db, nil
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Status{},
		&model.Country{},
		&model.State{},
		&model.Category{},
		&model.Currency{},
		&model.Plan{},
		&model.Business{},
		&model.User{},
		&model.License{},
		&model.LicenseUsage{},
		&model.Operator{},
		&model.LoginLog{},
		&model.OperationLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqlite allows one writer at a time; a single pooled connection keeps
// writes ordered and avoids SQLITE_BUSY under concurrent requests.
func configure(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

func withPragma(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + busyTimeout
	}
	return dsn + "?" + busyTimeout
}
