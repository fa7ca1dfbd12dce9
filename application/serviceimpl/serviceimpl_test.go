package serviceimpl_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskhub/domain/repositories"
	"taskhub/infrastructure/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "taskhub_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return db
}

func ptr[T any](v T) *T {
	return &v
}

func userQueryPage(skip, limit int) repositories.UserQuery {
	return repositories.UserQuery{Page: repositories.Page{Skip: skip, Limit: limit}}
}
