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

// PostHandler covers the post CRUD and the like/retweet toggles.
type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// List handles GET /posts/.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	posts, err := h.posts.List(skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]dto.PostDTO, len(posts))
	for i := range posts {
		response[i] = dto.NewPostDTO(&posts[i])
	}
	writeJSON(w, http.StatusOK, response)
}

// ListWithCounts handles GET /posts/with_counts/.
func (h *PostHandler) ListWithCounts(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	current := auth.CurrentUser(r)

	rows, err := h.posts.ListWithCounts(skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]dto.PostWithCountsDTO, len(rows))
	for i, row := range rows {
		response[i] = dto.NewPostWithCountsDTO(row, current.ID)
	}
	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /posts/.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePostRequest(w, r)
	if !ok {
		return
	}
	current := auth.CurrentUser(r)

	post, err := h.posts.Create(current.ID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.PostsCreated.Inc()
	writeJSON(w, http.StatusOK, dto.NewPostDTO(post))
}

// Update handles PUT /posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}
	req, ok := decodePostRequest(w, r)
	if !ok {
		return
	}
	current := auth.CurrentUser(r)

	post, err := h.posts.Update(postID, current.ID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPostDTO(post))
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}
	current := auth.CurrentUser(r)

	if err := h.posts.Delete(postID, current.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /posts/{id}/like.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "like", "set", h.posts.Like)
}

// Unlike handles POST /posts/{id}/unlike.
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "like", "unset", h.posts.Unlike)
}

// Retweet handles POST /posts/{id}/retweet.
func (h *PostHandler) Retweet(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "retweet", "set", h.posts.Retweet)
}

// Unretweet handles POST /posts/{id}/unretweet.
func (h *PostHandler) Unretweet(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "retweet", "unset", h.posts.Unretweet)
}

func (h *PostHandler) toggle(w http.ResponseWriter, r *http.Request, kind, action string, op func(postID, userID uint) error) {
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}
	current := auth.CurrentUser(r)

	if err := op(postID, current.ID); err != nil {
		writeError(w, err)
		return
	}

	monitoring.RelationshipToggles.WithLabelValues(kind, action).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func decodePostRequest(w http.ResponseWriter, r *http.Request) (dto.PostRequest, bool) {
	var req dto.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return req, false
	}
	return req, true
}

func postIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid post ID"})
		return 0, false
	}
	return uint(id), true
}
