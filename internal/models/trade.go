package models

import "time"

// Trade is a buy and/or sell operation on an account.
type Trade struct {
	Base
	Account      string     `gorm:"size:30;not null" json:"account"`
	Type         string     `gorm:"size:30;not null" json:"type"`
	BuyQuantity  *float64   `json:"buy_quantity,omitempty"`
	SellQuantity *float64   `json:"sell_quantity,omitempty"`
	BuyPrice     *float64   `json:"buy_price,omitempty"`
	SellPrice    *float64   `json:"sell_price,omitempty"`
	TradeDate    *time.Time `json:"trade_date,omitempty"`
	Security     string     `gorm:"size:125" json:"security,omitempty"`
	Status       string     `gorm:"size:10" json:"status,omitempty"`
	Trader       string     `gorm:"size:125" json:"trader,omitempty"`
	Benchmark    string     `gorm:"size:125" json:"benchmark,omitempty"`
	Book         string     `gorm:"size:125" json:"book,omitempty"`
	CreationName string     `gorm:"size:125" json:"creation_name,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	RevisionName string     `gorm:"size:125" json:"revision_name,omitempty"`
	RevisionDate *time.Time `json:"revision_date,omitempty"`
	DealName     string     `gorm:"size:125" json:"deal_name,omitempty"`
	DealType     string     `gorm:"size:125" json:"deal_type,omitempty"`
	SourceListID string     `gorm:"size:125" json:"source_list_id,omitempty"`
	Side         string     `gorm:"size:125" json:"side,omitempty"`
}

// TableName keeps the legacy table name.
func (Trade) TableName() string { return "trade" }
