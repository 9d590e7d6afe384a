package services

import (
	"time"

	"gorm.io/gorm"

	"poseidon/internal/models"
	"poseidon/internal/validator"
)

// NewCurvePointService creates a new CurvePointServicer.
func NewCurvePointService(db *gorm.DB) CurvePointServicer {
	return newOwnedService[models.CurvePoint](db, entityHooks[models.CurvePoint]{
		name: "CurvePoint",
		onCreate: func(p *models.CurvePoint, now time.Time) {
			p.CreationDate = &now
			if p.AsOfDate == nil {
				p.AsOfDate = &now
			}
		},
		onUpdate: func(stored, p *models.CurvePoint, _ time.Time) {
			p.CreationName = stored.CreationName
			p.CreationDate = stored.CreationDate
		},
		validate: validator.CurvePoint,
	})
}
