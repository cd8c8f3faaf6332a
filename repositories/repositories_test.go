package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/database"
	"microblog/models"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache name
// keeps GORM's pooled connections on the same database for the test's
// lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, ownerID uint, content string) *models.Post {
	t.Helper()

	post := &models.Post{Content: content, OwnerID: ownerID}
	require.NoError(t, db.Create(post).Error)
	return post
}
