package models

// Base contains the columns shared by every table: the surrogate key assigned
// by the database and the optimistic-lock version token.
type Base struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Version int64 `gorm:"not null" json:"version"`
}

// GetID returns the surrogate key.
func (b *Base) GetID() int64 { return b.ID }

// SetID sets the surrogate key. Zero marks a record that has not been stored yet.
func (b *Base) SetID(id int64) { b.ID = id }

// GetVersion returns the optimistic-lock version.
func (b *Base) GetVersion() int64 { return b.Version }

// SetVersion sets the optimistic-lock version.
func (b *Base) SetVersion(v int64) { b.Version = v }

// Record is implemented by pointers to every persisted entity.
type Record interface {
	GetID() int64
	SetID(id int64)
	GetVersion() int64
	SetVersion(v int64)
}

// Owned is implemented by records that carry a soft ownership reference.
// Owner returns the creator's username, or "" when the record is unowned.
type Owned interface {
	Owner() string
}

// All returns every persisted model, in dependency order, for schema migration.
func All() []interface{} {
	return []interface{}{
		&BidList{},
		&CurvePoint{},
		&Rating{},
		&RuleName{},
		&Trade{},
		&User{},
		&AuditLog{},
	}
}
