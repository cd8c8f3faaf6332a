package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/auth"
	"microblog/database"
	"microblog/handlers"
	"microblog/repositories"
	"microblog/routes"
	"microblog/services"
)

// newTestServer wires the full stack over a fresh in-memory database, the
// same way main.go does against Postgres.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userService := services.NewUserService(repositories.NewUserRepository(db))
	postService := services.NewPostService(repositories.NewPostRepository(db))

	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)
	middleware := auth.NewMiddleware(tokens, userService)

	return routes.SetupRoutes(
		handlers.NewAuthHandler(userService, tokens),
		handlers.NewUserHandler(userService),
		handlers.NewPostHandler(postService),
		handlers.NewSystemHandler(),
		middleware,
	)
}

func doJSON(t *testing.T, server http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, server http.Handler, username string) string {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/users/", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, server, http.MethodPost, "/auth/token", "", map[string]string{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	require.Equal(t, "bearer", tok.TokenType)
	return tok.AccessToken
}

func createPost(t *testing.T, server http.Handler, token, content string) uint {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/posts/", token, map[string]string{"content": content})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var post struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	return post.ID
}
