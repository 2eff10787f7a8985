package database_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		DSN:    "file:database_open?mode=memory&cache=shared",
		Quiet:  true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, model := range []any{&models.Category{}, &models.Product{}, &models.User{}, &models.Credential{}, &models.Favourite{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasColumn(&models.Favourite{}, "like_date"))
	assert.True(t, db.Migrator().HasColumn(&models.Credential{}, "user_id"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(database.Config{Driver: "oracle"})

	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}
