package repositories

import "microblog/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)

	Follow(followerID, followeeID uint) error
	Unfollow(followerID, followeeID uint) error
	IsFollowing(followerID, followeeID uint) (bool, error)
	ListFollowers(userID uint) ([]models.User, error)
	ListFollowing(userID uint) ([]models.User, error)
}

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	UpdateContent(id uint, content string) (*models.Post, error)
	Delete(id uint) error
	List(skip, limit int) ([]models.Post, error)
	ListWithCounts(skip, limit int) ([]PostWithCounts, error)

	Like(userID, postID uint) error
	Unlike(userID, postID uint) error
	HasLiked(userID, postID uint) (bool, error)
	Retweet(userID, postID uint) error
	Unretweet(userID, postID uint) error
	HasRetweeted(userID, postID uint) (bool, error)
}
