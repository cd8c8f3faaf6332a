package repositories

import (
	"gorm.io/gorm"

	"microblog/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create a new user
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Check if a user exists by username
func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Follow inserts the directed edge. The composite primary key turns a
// concurrent duplicate into gorm.ErrDuplicatedKey rather than a second row.
func (r *userRepository) Follow(followerID, followeeID uint) error {
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	return r.db.Create(&follow).Error
}

func (r *userRepository) Unfollow(followerID, followeeID uint) error {
	res := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowers returns the users following userID.
func (r *userRepository) ListFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Find(&users).Error
	return users, err
}

// ListFollowing returns the users userID follows.
func (r *userRepository) ListFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("INNER JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}
