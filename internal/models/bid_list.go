package models

import "time"

// BidList is a bid submitted against an account.
type BidList struct {
	Base
	Account      string     `gorm:"size:30;not null" json:"account"`
	Type         string     `gorm:"size:30;not null" json:"type"`
	BidQuantity  *float64   `json:"bid_quantity"`
	AskQuantity  *float64   `json:"ask_quantity,omitempty"`
	Bid          *float64   `json:"bid,omitempty"`
	Ask          *float64   `json:"ask,omitempty"`
	Benchmark    string     `gorm:"size:125" json:"benchmark,omitempty"`
	BidListDate  *time.Time `json:"bid_list_date,omitempty"`
	Commentary   string     `gorm:"size:125" json:"commentary,omitempty"`
	Security     string     `gorm:"size:125" json:"security,omitempty"`
	Status       string     `gorm:"size:10" json:"status,omitempty"`
	Trader       string     `gorm:"size:125" json:"trader,omitempty"`
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
func (BidList) TableName() string { return "bid_list" }

// Owner returns the username that created the bid.
func (b *BidList) Owner() string { return b.CreationName }
