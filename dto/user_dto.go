package dto

import (
	"time"

	"microblog/models"
)

// RegisterRequest is the payload for POST /users/.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO is the user shape returned by the API. The password hash never
// leaves the server.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// UsernamesDTO wraps a list of usernames for the followers/following routes.
type UsernamesDTO struct {
	Users []string `json:"users"`
}
