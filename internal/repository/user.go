package repository

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lus-labeler-backend/internal/models"
)

var (
	// ErrUsernameTaken is returned by Create when the username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository stores annotator accounts.
type UserRepository interface {
	Create(user *models.User) error
	List() ([]models.User, error)
	FindByUsername(username string) (*models.User, error)
	UpdatePassword(id uint, passwordHash string) error
	Delete(id uint) error
}

type userRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepository returns a UserRepository backed by the given database.
func NewUserRepository(db *gorm.DB, log *zap.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	if err := r.db.Create(user).Error; err != nil {
		// The unique index is the backstop for a concurrent create.
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
