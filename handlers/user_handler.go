package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"microblog/auth"
	"microblog/dto"
	"microblog/monitoring"
	"microblog/services"
)

// UserHandler covers registration and the follow endpoints.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users/.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "username, email and password are required"})
		return
	}

	user, err := h.users.Register(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.RegisterSuccess.Inc()
	writeJSON(w, http.StatusOK, dto.NewUserDTO(user))
}

// Follow handles POST /users/{id}/follow.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	targetID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}
	current := auth.CurrentUser(r)

	if err := h.users.Follow(current.ID, targetID); err != nil {
		writeError(w, err)
		return
	}

	monitoring.RelationshipToggles.WithLabelValues("follow", "set").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Unfollow handles POST /users/{id}/unfollow.
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	targetID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}
	current := auth.CurrentUser(r)

	if err := h.users.Unfollow(current.ID, targetID); err != nil {
		writeError(w, err)
		return
	}

	monitoring.RelationshipToggles.WithLabelValues("follow", "unset").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Followers handles GET /users/{id}/followers.
func (h *UserHandler) Followers(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	followers, err := h.users.ListFollowers(userID)
	if err != nil {
		writeError(w, err)
		return
	}

	names := make([]string, len(followers))
	for i, u := range followers {
		names[i] = u.Username
	}
	writeJSON(w, http.StatusOK, dto.UsernamesDTO{Users: names})
}

// Following handles GET /users/{id}/following.
func (h *UserHandler) Following(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	following, err := h.users.ListFollowing(userID)
	if err != nil {
		writeError(w, err)
		return
	}

	names := make([]string, len(following))
	for i, u := range following {
		names[i] = u.Username
	}
	writeJSON(w, http.StatusOK, dto.UsernamesDTO{Users: names})
}

func userIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid user ID"})
		return 0, false
	}
	return uint(id), true
}
