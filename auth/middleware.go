package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"microblog/models"
	"microblog/services"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// Middleware resolves the bearer token on protected routes and stores the
// authenticated user in the request context.
type Middleware struct {
	tokens *TokenManager
	users  *services.UserService
}

func NewMiddleware(tokens *TokenManager, users *services.UserService) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireUser rejects requests without a valid bearer token.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, "missing bearer token")
			return
		}

		username, err := m.tokens.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(w, "could not validate credentials")
			return
		}

		user, err := m.users.GetByUsername(username)
		if err != nil {
			unauthorized(w, "could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the user stored by RequireUser, or nil on public routes.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
