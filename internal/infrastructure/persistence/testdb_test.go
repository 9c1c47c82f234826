package persistence

import (
	"testing"

	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with all tables migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.SchemeModel{},
		&models.EnrollmentModel{},
		&models.CollectionEntryModel{},
		&models.LedgerEntryModel{},
		&models.CustomerModel{},
		&models.AgentModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}
