package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"microblog/auth"
	"microblog/dto"
	"microblog/monitoring"
	"microblog/services"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	users  *services.UserService
	tokens *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Token handles POST /auth/token. Credentials are accepted as JSON or
// form-encoded.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid form data"})
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		monitoring.LoginFailure.WithLabelValues("bad credentials").Inc()
		writeError(w, err)
		return
	}

	token, err := h.tokens.CreateToken(user.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, dto.TokenDTO{AccessToken: token, TokenType: "bearer"})
}
