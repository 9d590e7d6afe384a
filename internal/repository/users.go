package repository

import (
	"errors"

	"gorm.io/gorm"

	"poseidon/internal/models"
)

// UserStore adds username lookups to the generic user store.
type UserStore interface {
	Store[models.User]
	FindByUsername(username string) (*models.User, error)
	// UsernameTaken reports whether another user than excludeID owns username.
	UsernameTaken(username string, excludeID int64) (bool, error)
}

type gormUserStore struct {
	Store[models.User]
	db *gorm.DB
}

// NewUserStore returns a UserStore backed by db.
func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{Store: New[models.User](db), db: db}
}

func (s *gormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) UsernameTaken(username string, excludeID int64) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
