package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"microblog/apperrors"
	"microblog/models"
	"microblog/repositories"
)

// EditWindow is how long after creation a post stays editable by its owner.
const EditWindow = 10 * time.Minute

// MaxContentLength bounds post content, matching the column size.
const MaxContentLength = 280

// PostService owns post lifecycle rules and the like/retweet toggles.
type PostService struct {
	posts repositories.PostRepository

	now func() time.Time
}

func NewPostService(posts repositories.PostRepository) *PostService {
	return &PostService{posts: posts, now: time.Now}
}

func (s *PostService) Create(ownerID uint, content string) (*models.Post, error) {
	if content == "" || utf8.RuneCountInString(content) > MaxContentLength {
		return nil, apperrors.InvalidRequest("content must be between 1 and %d characters", MaxContentLength)
	}
	post := &models.Post{Content: content, OwnerID: ownerID}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(skip, limit int) ([]models.Post, error) {
	return s.posts.List(skip, limit)
}

func (s *PostService) ListWithCounts(skip, limit int) ([]repositories.PostWithCounts, error) {
	return s.posts.ListWithCounts(skip, limit)
}

// Update rewrites a post's content. Only the owner may edit, and only while
// the edit window is open. Ownership is checked before the window so a
// non-owner always sees Forbidden, no matter how old the post is. The window
// runs from the immutable creation timestamp; once elapsed the post is locked
// for good.
func (s *PostService) Update(postID, userID uint, content string) (*models.Post, error) {
	if content == "" || utf8.RuneCountInString(content) > MaxContentLength {
		return nil, apperrors.InvalidRequest("content must be between 1 and %d characters", MaxContentLength)
	}

	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != userID {
		return nil, apperrors.Forbidden("not authorized to edit this post")
	}
	if s.now().Sub(post.CreatedAt) >= EditWindow {
		return nil, apperrors.Forbidden("you can only edit a post within 10 minutes of its creation")
	}

	return s.posts.UpdateContent(postID, content)
}

// Delete removes a post and, through the repository, its likes and retweets.
// Owner-only, but never time-restricted.
func (s *PostService) Delete(postID, userID uint) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if post.OwnerID != userID {
		return apperrors.Forbidden("not authorized to delete this post")
	}
	return s.posts.Delete(postID)
}

// Like records that userID liked postID. Liking twice is a conflict.
func (s *PostService) Like(postID, userID uint) error {
	if _, err := s.Get(postID); err != nil {
		return err
	}
	liked, err := s.posts.HasLiked(userID, postID)
	if err != nil {
		return err
	}
	if liked {
		return apperrors.Conflict("already liked")
	}
	if err := s.posts.Like(userID, postID); err != nil {
		// The composite key turns a concurrent duplicate into a
		// deterministic conflict instead of a stray constraint error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("already liked")
		}
		return err
	}
	return nil
}

func (s *PostService) Unlike(postID, userID uint) error {
	if _, err := s.Get(postID); err != nil {
		return err
	}
	if err := s.posts.Unlike(userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("not liked yet")
		}
		return err
	}
	return nil
}

func (s *PostService) Retweet(postID, userID uint) error {
	if _, err := s.Get(postID); err != nil {
		return err
	}
	retweeted, err := s.posts.HasRetweeted(userID, postID)
	if err != nil {
		return err
	}
	if retweeted {
		return apperrors.Conflict("already retweeted")
	}
	if err := s.posts.Retweet(userID, postID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("already retweeted")
		}
		return err
	}
	return nil
}

func (s *PostService) Unretweet(postID, userID uint) error {
	if _, err := s.Get(postID); err != nil {
		return err
	}
	if err := s.posts.Unretweet(userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("not retweeted yet")
		}
		return err
	}
	return nil
}
