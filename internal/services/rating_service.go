package services

import (
	"gorm.io/gorm"

	"poseidon/internal/models"
	"poseidon/internal/validator"
)

// NewRatingService creates a new RatingServicer.
func NewRatingService(db *gorm.DB) RatingServicer {
	return newPlainService[models.Rating](db, entityHooks[models.Rating]{
		name:     "Rating",
		validate: validator.Rating,
	})
}
