package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepos opens an in-memory database with the full schema.
// Each test gets its own database.
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh in-memory database exists per connection; pin the pool to one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Conversation{},
		&entity.Message{},
		&entity.Partner{},
		&entity.Booking{},
		&entity.CommissionRule{},
		&entity.FinanceConfig{},
		&entity.Role{},
		&entity.AdminUser{},
	)
	require.NoError(t, err)

	return repository.NewRepositoriesWithDB(db, nil)
}
