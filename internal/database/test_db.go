package database

import (
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitTestDB opens a private in-memory database with the full schema. Each
// call gets its own database so tests do not share rows.
func InitTestDB() *gorm.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(withPragma(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}
	if err := configure(db); err != nil {
		panic(err)
	}
	if err := Migrate(db); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}
	return db
}

func CleanTestDB(db *gorm.DB) {
	_ = Close(db)
}
