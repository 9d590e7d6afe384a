package models

import "time"

// AuditLog records a write made through the API.
type AuditLog struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:125;not null;index" json:"username"`
	Action       string    `gorm:"size:32;not null" json:"action"`
	ResourceType string    `gorm:"size:32;not null" json:"resource_type"`
	ResourceID   int64     `json:"resource_id"`
	IPAddress    string    `gorm:"size:64" json:"ip_address"`
	Changes      string    `json:"changes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
