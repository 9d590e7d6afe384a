package validator

import (
	"github.com/shopspring/decimal"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

const (
	maxIntegerDigits  = 10
	maxFractionDigits = 4
)

var integerLimit = decimal.New(1, maxIntegerDigits)

// checker collects the first failure per field.
type checker struct {
	errs []apperrors.FieldError
}

func (c *checker) failed(field string) bool {
	for _, e := range c.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (c *checker) add(field, message string) {
	if !c.failed(field) {
		c.errs = append(c.errs, apperrors.FieldError{Field: field, Message: message})
	}
}

func (c *checker) str(field, value, tag, message string) {
	if c.failed(field) {
		return
	}
	if err := engine.Var(value, tag); err != nil {
		c.add(field, message)
	}
}

func (c *checker) float(field string, value *float64, tag, missing, message string) {
	if value == nil {
		if missing != "" {
			c.add(field, missing)
		}
		return
	}
	if err := engine.Var(*value, tag); err != nil {
		c.add(field, message)
	}
}

func (c *checker) digits(field string, value decimal.Decimal, message string) {
	if !value.Equal(value.Truncate(maxFractionDigits)) || !value.Abs().LessThan(integerLimit) {
		c.add(field, message)
	}
}

// BidList validates a bid. A nil bid yields no errors.
func BidList(b *models.BidList) []apperrors.FieldError {
	if b == nil {
		return nil
	}
	c := &checker{}
	c.str("account", b.Account, "notblank", "Account is mandatory")
	c.str("account", b.Account, "max=30", "Account must be less than 30 characters")
	c.str("type", b.Type, "notblank", "Type is mandatory")
	c.str("type", b.Type, "max=30", "Type must be less than 30 characters")
	c.float("bid_quantity", b.BidQuantity, "gte=0", "Bid quantity is mandatory", "Bid quantity must be positive or zero")
	c.float("ask_quantity", b.AskQuantity, "gte=0", "", "Ask quantity must be positive or zero")
	c.float("bid", b.Bid, "gte=0", "", "Bid must be positive or zero")
	c.float("ask", b.Ask, "gte=0", "", "Ask must be positive or zero")
	c.str("benchmark", b.Benchmark, "max=125", "Benchmark must be less than 125 characters")
	c.str("commentary", b.Commentary, "max=125", "Commentary must be less than 125 characters")
	c.str("security", b.Security, "max=125", "Security must be less than 125 characters")
	c.str("status", b.Status, "max=10", "Status must be less than 10 characters")
	c.str("trader", b.Trader, "max=125", "Trader must be less than 125 characters")
	c.str("book", b.Book, "max=125", "Book must be less than 125 characters")
	c.str("creation_name", b.CreationName, "max=125", "Creation name must be less than 125 characters")
	c.str("revision_name", b.RevisionName, "max=125", "Revision name must be less than 125 characters")
	c.str("deal_name", b.DealName, "max=125", "Deal name must be less than 125 characters")
	c.str("deal_type", b.DealType, "max=125", "Deal type must be less than 125 characters")
	c.str("source_list_id", b.SourceListID, "max=125", "Source list ID must be less than 125 characters")
	c.str("side", b.Side, "max=125", "Side must be less than 125 characters")
	return c.errs
}

// CurvePoint validates a curve point. A nil point yields no errors.
func CurvePoint(p *models.CurvePoint) []apperrors.FieldError {
	if p == nil {
		return nil
	}
	c := &checker{}
	switch {
	case p.CurveID == nil:
		c.add("curve_id", "Curve ID is mandatory")
	case *p.CurveID < 1:
		c.add("curve_id", "Curve ID must be positive")
	}

	switch {
	case !p.Term.Valid:
		c.add("term", "Term is mandatory")
	case p.Term.Decimal.IsNegative():
		c.add("term", "Term must be positive or zero")
	default:
		c.digits("term", p.Term.Decimal, "Term must be a valid number with max 4 decimal places")
	}

	if !p.Value.Valid {
		c.add("value", "Value is mandatory")
	} else {
		c.digits("value", p.Value.Decimal, "Value must be a valid number with max 4 decimal places")
	}

	c.str("creation_name", p.CreationName, "max=125", "Creation name must be less than 125 characters")
	return c.errs
}

// Rating validates the agency grammars and requires at least one rating.
// A nil rating yields no errors.
func Rating(r *models.Rating) []apperrors.FieldError {
	if r == nil {
		return nil
	}
	c := &checker{}
	c.str("moodys_rating", r.MoodysRating, "max=125,moodys", "Moody's rating must follow standard format (e.g., Aaa, Aa1, A2, Baa3, Ba1, B2, Caa1, Ca, C)")
	c.str("sand_p_rating", r.SandPRating, "max=125,sp_rating", "S&P rating must follow standard format (e.g., AAA, AA+, A-, BBB, BB+, B-, CCC, D)")
	c.str("fitch_rating", r.FitchRating, "max=125,fitch_rating", "Fitch rating must follow standard format (e.g., AAA, AA+, A-, BBB, BB+, B-, CCC, D)")
	if r.OrderNumber != nil && *r.OrderNumber < 1 {
		c.add("order_number", "Order number must be positive")
	}
	if !HasAnyRating(r) {
		c.add("rating", "At least one rating (Moody's, S&P or Fitch) must be provided")
	}
	return c.errs
}

// RuleName validates a rule definition. A nil rule yields no errors.
func RuleName(r *models.RuleName) []apperrors.FieldError {
	if r == nil {
		return nil
	}
	c := &checker{}
	c.str("name", r.Name, "notblank", "Name is mandatory")
	c.str("name", r.Name, "max=125", "Name must be less than 125 characters")
	c.str("description", r.Description, "max=125", "Description must be less than 125 characters")
	c.str("json", r.JSON, "max=125", "JSON must be less than 125 characters")
	c.str("template", r.Template, "max=512", "Template must be less than 512 characters")
	c.str("sql_str", r.SQLStr, "max=125", "SQL string must be less than 125 characters")
	c.str("sql_part", r.SQLPart, "max=125", "SQL part must be less than 125 characters")
	return c.errs
}

// Trade validates a trade including its buy/sell consistency. A nil trade
// yields no errors.
func Trade(t *models.Trade) []apperrors.FieldError {
	if t == nil {
		return nil
	}
	c := &checker{}
	c.str("account", t.Account, "notblank", "Account is mandatory")
	c.str("account", t.Account, "max=30", "Account must be less than 30 characters")
	c.str("account", t.Account, "alphanum", "Account must be 1-30 letters or digits")
	c.str("type", t.Type, "notblank", "Type is mandatory")
	c.str("type", t.Type, "max=30", "Type must be less than 30 characters")
	c.float("buy_quantity", t.BuyQuantity, "gt=0", "", "Buy quantity must be positive")
	c.float("sell_quantity", t.SellQuantity, "gt=0", "", "Sell quantity must be positive")
	c.float("buy_price", t.BuyPrice, "gt=0", "", "Buy price must be positive")
	c.float("sell_price", t.SellPrice, "gt=0", "", "Sell price must be positive")
	c.str("security", t.Security, "max=125", "Security must be less than 125 characters")
	c.str("status", t.Status, "max=10", "Status must be less than 10 characters")
	c.str("trader", t.Trader, "max=125", "Trader must be less than 125 characters")
	c.str("benchmark", t.Benchmark, "max=125", "Benchmark must be less than 125 characters")
	c.str("book", t.Book, "max=125", "Book must be less than 125 characters")
	c.str("creation_name", t.CreationName, "max=125", "Creation name must be less than 125 characters")
	c.str("revision_name", t.RevisionName, "max=125", "Revision name must be less than 125 characters")
	c.str("deal_name", t.DealName, "max=125", "Deal name must be less than 125 characters")
	c.str("deal_type", t.DealType, "max=125", "Deal type must be less than 125 characters")
	c.str("source_list_id", t.SourceListID, "max=125", "Source list ID must be less than 125 characters")
	c.str("side", t.Side, "max=125", "Side must be less than 125 characters")
	for _, e := range CheckTradeOperations(t) {
		c.add(e.Field, e.Message)
	}
	return c.errs
}

// User validates the persisted fields of a user. The plaintext password is
// checked separately with Password.
func User(u *models.User) []apperrors.FieldError {
	if u == nil {
		return nil
	}
	c := &checker{}
	c.str("username", u.Username, "notblank", "Username is mandatory")
	c.str("username", u.Username, "max=125", "Username must be less than 125 characters")
	c.str("fullname", u.Fullname, "notblank", "Full Name is mandatory")
	c.str("fullname", u.Fullname, "max=125", "Full Name must be less than 125 characters")
	c.str("role", u.Role, "notblank", "Role is mandatory")
	c.str("role", u.Role, "max=125", "Role must be less than 125 characters")
	return c.errs
}

// Password validates a plaintext password against the policy.
func Password(plaintext string) []apperrors.FieldError {
	if ValidPassword(plaintext) {
		return nil
	}
	return []apperrors.FieldError{{
		Field:   "password",
		Message: "Password must be at least 8 characters and contain an uppercase letter, a digit and a symbol",
	}}
}
