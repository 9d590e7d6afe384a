package services

import (
	"time"

	"gorm.io/gorm"

	"poseidon/internal/models"
	"poseidon/internal/validator"
)

// NewTradeService creates a new TradeServicer.
func NewTradeService(db *gorm.DB) TradeServicer {
	return newPlainService[models.Trade](db, entityHooks[models.Trade]{
		name: "Trade",
		onCreate: func(t *models.Trade, now time.Time) {
			t.CreationDate = &now
			if t.TradeDate == nil {
				t.TradeDate = &now
			}
		},
		onUpdate: func(stored, t *models.Trade, now time.Time) {
			t.CreationName = stored.CreationName
			t.CreationDate = stored.CreationDate
			t.RevisionDate = &now
		},
		validate: validator.Trade,
	})
}
