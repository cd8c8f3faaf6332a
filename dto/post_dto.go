package dto

import (
	"time"

	"microblog/models"
	"microblog/repositories"
)

// PostRequest is the payload for creating or updating a post.
type PostRequest struct {
	Content string `json:"content"`
}

// PostDTO is the plain post shape returned by the API.
type PostDTO struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	OwnerID   uint      `json:"owner_id"`
}

func NewPostDTO(post *models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Content:   post.Content,
		Timestamp: post.CreatedAt,
		OwnerID:   post.OwnerID,
	}
}

// PostWithCountsDTO augments a post with its aggregated counts, the owner's
// username, and whether the requesting user owns it.
type PostWithCountsDTO struct {
	ID            uint      `json:"id"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	OwnerID       uint      `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	LikesCount    int64     `json:"likes_count"`
	RetweetsCount int64     `json:"retweets_count"`
	IsOwner       bool      `json:"is_owner"`
}

func NewPostWithCountsDTO(row repositories.PostWithCounts, currentUserID uint) PostWithCountsDTO {
	return PostWithCountsDTO{
		ID:            row.ID,
		Content:       row.Content,
		Timestamp:     row.CreatedAt,
		OwnerID:       row.OwnerID,
		OwnerUsername: row.OwnerUsername,
		LikesCount:    row.LikesCount,
		RetweetsCount: row.RetweetsCount,
		IsOwner:       row.OwnerID == currentUserID,
	}
}
