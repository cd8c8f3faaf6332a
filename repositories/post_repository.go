package repositories

import (
	"time"

	"gorm.io/gorm"

	"microblog/models"
)

// PostWithCounts is the row shape produced by the aggregation query: a post
// joined with its owner's username and its like/retweet counts.
type PostWithCounts struct {
	ID            uint      `gorm:"column:id"`
	Content       string    `gorm:"column:content"`
	CreatedAt     time.Time `gorm:"column:timestamp"`
	OwnerID       uint      `gorm:"column:owner_id"`
	OwnerUsername string    `gorm:"column:owner_username"`
	LikesCount    int64     `gorm:"column:likes_count"`
	RetweetsCount int64     `gorm:"column:retweets_count"`
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateContent changes the content only. The creation timestamp is left
// untouched so the edit window never resets.
func (r *postRepository) UpdateContent(id uint, content string) (*models.Post, error) {
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes the post and its likes and retweets in one transaction.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Retweet{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// List returns a page of posts, newest first.
func (r *postRepository) List(skip, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("timestamp DESC").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListWithCounts returns a page of posts, newest first, each joined with its
// owner's username and like/retweet counts. Counts come from grouped
// subqueries left-joined onto the base query, so posts nobody touched yield 0
// instead of dropping out; the joins cannot change row count or order because
// each subquery emits at most one row per post.
func (r *postRepository) ListWithCounts(skip, limit int) ([]PostWithCounts, error) {
	likeCounts := r.db.Model(&models.Like{}).
		Select("post_id, COUNT(user_id) AS likes_count").
		Group("post_id")

	retweetCounts := r.db.Model(&models.Retweet{}).
		Select("post_id, COUNT(user_id) AS retweets_count").
		Group("post_id")

	var rows []PostWithCounts
	err := r.db.Model(&models.Post{}).
		Select("posts.id, posts.content, posts.timestamp, posts.owner_id, " +
			"users.username AS owner_username, " +
			"COALESCE(lc.likes_count, 0) AS likes_count, " +
			"COALESCE(rc.retweets_count, 0) AS retweets_count").
		Joins("INNER JOIN users ON users.id = posts.owner_id").
		Joins("LEFT JOIN (?) AS lc ON lc.post_id = posts.id", likeCounts).
		Joins("LEFT JOIN (?) AS rc ON rc.post_id = posts.id", retweetCounts).
		Order("posts.timestamp DESC").
		Offset(skip).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Like inserts the join row. A concurrent duplicate surfaces as
// gorm.ErrDuplicatedKey via the composite primary key, never as a second row.
func (r *postRepository) Like(userID, postID uint) error {
	like := models.Like{UserID: userID, PostID: postID}
	return r.db.Create(&like).Error
}

func (r *postRepository) Unlike(userID, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) HasLiked(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) Retweet(userID, postID uint) error {
	retweet := models.Retweet{UserID: userID, PostID: postID}
	return r.db.Create(&retweet).Error
}

func (r *postRepository) Unretweet(userID, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Retweet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) HasRetweeted(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Retweet{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
