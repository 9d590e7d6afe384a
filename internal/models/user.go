package models

// User is an application identity. Password holds the one-way hash and is
// never serialised.
type User struct {
	Base
	Username string `gorm:"size:125;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:125;not null" json:"-"`
	Fullname string `gorm:"size:125;not null" json:"fullname"`
	Role     string `gorm:"size:125;not null" json:"role"`
}

// TableName keeps the legacy table name.
func (User) TableName() string { return "users" }
