package services

import (
	"fmt"
	"testing"
	"time"

	"pubfeed/internal/cache"
	"pubfeed/internal/db"
	"pubfeed/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestEnv spins up an in-memory database and a miniredis-backed cache.
func newTestEnv(t *testing.T) (*gorm.DB, *cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))

	mr := miniredis.RunT(t)
	c := cache.New(cache.Options{
		Addr:   mr.Addr(),
		Prefix: "publication",
		TTL:    time.Minute,
	})
	t.Cleanup(func() { c.Close() })

	return conn, c, mr
}

func createTestUser(t *testing.T, conn *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, Password: "hash"}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

func cacheKey(id uint) string {
	return fmt.Sprintf("publication:%s:%d", PublicationEntity, id)
}
