package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/database"
	"github.com/mantra-gor/BillSane-Admin/internal/keycipher"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := database.InitTestDB()
	t.Cleanup(func() { database.CleanTestDB(db) })
	require.NoError(t, database.Seed(db, zap.NewNop()))
	return db
}

func newTestCipher(t *testing.T) *keycipher.Cipher {
	t.Helper()
	c, err := keycipher.New(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return c
}

func createBusiness(t *testing.T, db *gorm.DB, b model.Business) model.Business {
	t.Helper()
	if b.Name == "" {
		b.Name = "Acme Traders"
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func statusID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	var s model.Status
	require.NoError(t, db.Where("name = ?", name).First(&s).Error)
	return s.ID
}
