package postgres

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-cms/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "school-cms-logs")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(dir, false); err != nil {
		panic(err)
	}

	code := m.Run()

	logger.Default().Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

// newTestDB returns a migrated in-memory SQLite database private to the test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}
