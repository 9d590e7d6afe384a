package services

import (
	"time"

	"gorm.io/gorm"

	"poseidon/internal/models"
	"poseidon/internal/validator"
)

// NewBidListService creates a new BidListServicer.
func NewBidListService(db *gorm.DB) BidListServicer {
	return newOwnedService[models.BidList](db, entityHooks[models.BidList]{
		name: "BidList",
		onCreate: func(b *models.BidList, now time.Time) {
			b.CreationDate = &now
		},
		onUpdate: func(stored, b *models.BidList, now time.Time) {
			b.CreationName = stored.CreationName
			b.CreationDate = stored.CreationDate
			b.RevisionDate = &now
		},
		validate: validator.BidList,
	})
}
