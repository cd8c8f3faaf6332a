package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/database"
	"microblog/models"
	"microblog/repositories"
)

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

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewPostService(repositories.NewPostRepository(db)), db
}

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repositories.NewUserRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
