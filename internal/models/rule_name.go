package models

// RuleName is a named rule definition with optional SQL and template fragments.
type RuleName struct {
	Base
	Name        string `gorm:"size:125;not null" json:"name"`
	Description string `gorm:"size:125" json:"description"`
	JSON        string `gorm:"column:json;size:125" json:"json"`
	Template    string `gorm:"size:512" json:"template"`
	SQLStr      string `gorm:"column:sql_str;size:125" json:"sql_str"`
	SQLPart     string `gorm:"column:sql_part;size:125" json:"sql_part"`
}

// TableName keeps the legacy table name.
func (RuleName) TableName() string { return "rule_name" }
