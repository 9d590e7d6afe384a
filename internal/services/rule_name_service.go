package services

import (
	"gorm.io/gorm"

	"poseidon/internal/models"
	"poseidon/internal/validator"
)

// NewRuleNameService creates a new RuleNameServicer.
func NewRuleNameService(db *gorm.DB) RuleNameServicer {
	return newPlainService[models.RuleName](db, entityHooks[models.RuleName]{
		name:     "RuleName",
		validate: validator.RuleName,
	})
}
