package models

import "regexp"

var (
	moodysInvestmentGrade = regexp.MustCompile(`^(Aaa|Aa[1-3]|A[1-3]|Baa[1-3])$`)
	agencyInvestmentGrade = regexp.MustCompile(`^(AAA|AA[+-]?|A[+-]?|BBB[+-]?)$`)
)

// Rating holds the agency ratings of an instrument.
type Rating struct {
	Base
	MoodysRating string `gorm:"size:125" json:"moodys_rating"`
	SandPRating  string `gorm:"column:sand_p_rating;size:125" json:"sand_p_rating"`
	FitchRating  string `gorm:"size:125" json:"fitch_rating"`
	OrderNumber  *int   `json:"order_number,omitempty"`
}

// TableName keeps the legacy table name.
func (Rating) TableName() string { return "rating" }

// InvestmentGrade reports whether any agency rates the instrument Baa3/BBB- or better.
func (r *Rating) InvestmentGrade() bool {
	return moodysInvestmentGrade.MatchString(r.MoodysRating) ||
		agencyInvestmentGrade.MatchString(r.SandPRating) ||
		agencyInvestmentGrade.MatchString(r.FitchRating)
}
