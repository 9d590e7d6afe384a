package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurvePoint is a single (term, value) point on a named curve. Term and value
// are stored as exact decimals.
type CurvePoint struct {
	Base
	CurveID      *int                `gorm:"column:curve_id" json:"curve_id"`
	AsOfDate     *time.Time          `json:"as_of_date,omitempty"`
	Term         decimal.NullDecimal `gorm:"type:numeric(14,4)" json:"term"`
	Value        decimal.NullDecimal `gorm:"type:numeric(14,4)" json:"value"`
	CreationDate *time.Time          `json:"creation_date,omitempty"`
	CreationName string              `gorm:"size:125" json:"creation_name,omitempty"`
}

// TableName keeps the legacy table name.
func (CurvePoint) TableName() string { return "curve_point" }

// Owner returns the username that created the point.
func (p *CurvePoint) Owner() string { return p.CreationName }
