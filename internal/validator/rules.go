package validator

import (
	"strings"
	"unicode/utf8"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

const minPasswordLength = 8

// ValidPassword reports whether plaintext satisfies the password policy:
// at least 8 characters, one uppercase letter, one digit and one symbol.
// Line terminators are not accepted anywhere in the password.
func ValidPassword(plaintext string) bool {
	if utf8.RuneCountInString(plaintext) < minPasswordLength {
		return false
	}
	var upper, digit, symbol bool
	for _, r := range plaintext {
		switch {
		case r == '\n' || r == '\r' || r == '\u0085' || r == '\u2028' || r == '\u2029':
			return false
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			symbol = true
		}
	}
	return upper && digit && symbol
}

// HasAnyRating reports whether at least one agency rating is non-blank.
// A nil rating is accepted; presence is enforced by the caller.
func HasAnyRating(r *models.Rating) bool {
	if r == nil {
		return true
	}
	return strings.TrimSpace(r.MoodysRating) != "" ||
		strings.TrimSpace(r.SandPRating) != "" ||
		strings.TrimSpace(r.FitchRating) != ""
}

// CheckTradeOperations enforces that a trade carries at least one operation and
// that every side with a quantity also carries a positive price.
func CheckTradeOperations(t *models.Trade) []apperrors.FieldError {
	if t == nil {
		return []apperrors.FieldError{{Field: "trade", Message: "Trade is required"}}
	}

	buy := positive(t.BuyQuantity)
	sell := positive(t.SellQuantity)

	var errs []apperrors.FieldError
	if !buy && !sell {
		errs = append(errs, apperrors.FieldError{Field: "operation", Message: "At least one operation (buy or sell) must be defined"})
	}
	if buy && !positive(t.BuyPrice) {
		errs = append(errs, apperrors.FieldError{Field: "buy_price", Message: "Buy price is required when a buy quantity is set"})
	}
	if sell && !positive(t.SellPrice) {
		errs = append(errs, apperrors.FieldError{Field: "sell_price", Message: "Sell price is required when a sell quantity is set"})
	}
	return errs
}

// ValidTrade reports whether CheckTradeOperations finds nothing wrong.
func ValidTrade(t *models.Trade) bool {
	return len(CheckTradeOperations(t)) == 0
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}
