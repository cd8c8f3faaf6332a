package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"microblog/apperrors"
	"microblog/models"
	"microblog/repositories"
)

// UserService owns registration, credential checks and the follow
// relationship rules.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a new account. Username and email must both be unused.
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	taken, err := s.users.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("username already registered")
	}

	taken, err = s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		// Backstop for a concurrent registration slipping past the checks.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("username or email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. The error does not say
// which of the two was wrong.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("incorrect username or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("incorrect username or password")
	}
	return user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// Follow makes current follow target. Not idempotent: following twice is a
// conflict, not a no-op.
func (s *UserService) Follow(currentID, targetID uint) error {
	if _, err := s.users.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return err
	}
	if targetID == currentID {
		return apperrors.InvalidRequest("cannot follow yourself")
	}

	following, err := s.users.IsFollowing(currentID, targetID)
	if err != nil {
		return err
	}
	if following {
		return apperrors.Conflict("already following this user")
	}

	if err := s.users.Follow(currentID, targetID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("already following this user")
		}
		return err
	}
	return nil
}

// Unfollow removes the directed edge from current to target.
func (s *UserService) Unfollow(currentID, targetID uint) error {
	if _, err := s.users.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return err
	}
	if targetID == currentID {
		return apperrors.InvalidRequest("cannot unfollow yourself")
	}

	if err := s.users.Unfollow(currentID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.InvalidRequest("not following this user")
		}
		return err
	}
	return nil
}

// ListFollowers returns the users following the given user.
func (s *UserService) ListFollowers(userID uint) ([]models.User, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return s.users.ListFollowers(userID)
}

// ListFollowing returns the users the given user follows.
func (s *UserService) ListFollowing(userID uint) ([]models.User, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return s.users.ListFollowing(userID)
}
