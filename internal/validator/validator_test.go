package validator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

func f64(v float64) *float64 { return &v }
func intPtr(v int) *int      { return &v }

func fields(errs []apperrors.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Password1!", true},
		{"password1!", false},
		{"Password!", false},
		{"Password1", false},
		{"A1!aaaa", false},
		{"", false},
		{"A1!aaaaa", true},
		{"äbcdefg1!", false},
		{"Pass word1", true},
		{"Password1!\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestHasAnyRating(t *testing.T) {
	assert.True(t, HasAnyRating(nil))
	assert.False(t, HasAnyRating(&models.Rating{}))
	assert.True(t, HasAnyRating(&models.Rating{MoodysRating: "Aaa"}))
	assert.False(t, HasAnyRating(&models.Rating{MoodysRating: "", SandPRating: "   ", FitchRating: ""}))
	assert.True(t, HasAnyRating(&models.Rating{FitchRating: "BBB-"}))
}

func TestCheckTradeOperations(t *testing.T) {
	tests := []struct {
		name       string
		trade      *models.Trade
		wantFields []string
	}{
		{"nil", nil, []string{"trade"}},
		{"no_operation", &models.Trade{}, []string{"operation"}},
		{"zero_quantities", &models.Trade{BuyQuantity: f64(0), SellQuantity: f64(0)}, []string{"operation"}},
		{"buy_priced", &models.Trade{BuyQuantity: f64(100), BuyPrice: f64(50)}, []string{}},
		{"buy_without_price", &models.Trade{BuyQuantity: f64(100)}, []string{"buy_price"}},
		{"sell_zero_price", &models.Trade{SellQuantity: f64(10), SellPrice: f64(0)}, []string{"sell_price"}},
		{"zero_buy_priced_sell", &models.Trade{BuyQuantity: f64(0), SellQuantity: f64(20), SellPrice: f64(5)}, []string{}},
		{"both_missing_prices", &models.Trade{BuyQuantity: f64(1), SellQuantity: f64(1)}, []string{"buy_price", "sell_price"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckTradeOperations(tt.trade)
			assert.Equal(t, tt.wantFields, fields(errs))
			assert.Equal(t, len(tt.wantFields) == 0, ValidTrade(tt.trade))
		})
	}
}

func TestBidList(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := BidList(&models.BidList{Account: "Acme", Type: "SWAP", BidQuantity: f64(100)})
		assert.Empty(t, errs)
	})

	t.Run("nil_is_valid", func(t *testing.T) {
		assert.Empty(t, BidList(nil))
	})

	t.Run("missing_required", func(t *testing.T) {
		errs := BidList(&models.BidList{Account: "  "})
		assert.Equal(t, []string{"account", "type", "bid_quantity"}, fields(errs))
		assert.Equal(t, "Account is mandatory", errs[0].Message)
	})

	t.Run("length_and_bounds", func(t *testing.T) {
		errs := BidList(&models.BidList{
			Account:     strings.Repeat("a", 31),
			Type:        "SWAP",
			BidQuantity: f64(-1),
			Ask:         f64(-0.5),
			Status:      "TOO-LONG-STATUS",
		})
		assert.Equal(t, []string{"account", "bid_quantity", "ask", "status"}, fields(errs))
	})
}

func TestCurvePoint(t *testing.T) {
	valid := func() *models.CurvePoint {
		return &models.CurvePoint{
			CurveID: intPtr(1),
			Term:    decimal.NewNullDecimal(decimal.RequireFromString("10.1234")),
			Value:   decimal.NewNullDecimal(decimal.RequireFromString("-3.5")),
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, CurvePoint(valid()))
	})

	t.Run("trailing_zeros_do_not_count", func(t *testing.T) {
		p := valid()
		p.Term = decimal.NewNullDecimal(decimal.RequireFromString("1.50000000"))
		assert.Empty(t, CurvePoint(p))
	})

	t.Run("too_many_fraction_digits", func(t *testing.T) {
		p := valid()
		p.Value = decimal.NewNullDecimal(decimal.RequireFromString("0.12345"))
		assert.Equal(t, []string{"value"}, fields(CurvePoint(p)))
	})

	t.Run("too_many_integer_digits", func(t *testing.T) {
		p := valid()
		p.Term = decimal.NewNullDecimal(decimal.RequireFromString("12345678901"))
		assert.Equal(t, []string{"term"}, fields(CurvePoint(p)))
	})

	t.Run("missing_and_out_of_range", func(t *testing.T) {
		errs := CurvePoint(&models.CurvePoint{CurveID: intPtr(0)})
		assert.Equal(t, []string{"curve_id", "term", "value"}, fields(errs))
	})

	t.Run("negative_term", func(t *testing.T) {
		p := valid()
		p.Term = decimal.NewNullDecimal(decimal.NewFromInt(-1))
		errs := CurvePoint(p)
		require.Len(t, errs, 1)
		assert.Equal(t, "Term must be positive or zero", errs[0].Message)
	})
}

func TestRating(t *testing.T) {
	tests := []struct {
		name       string
		rating     models.Rating
		wantFields []string
	}{
		{"moodys_only", models.Rating{MoodysRating: "Baa2"}, []string{}},
		{"all_agencies", models.Rating{MoodysRating: "Aa1", SandPRating: "AA+", FitchRating: "B-"}, []string{}},
		{"all_blank", models.Rating{MoodysRating: "", SandPRating: "   ", FitchRating: ""}, []string{"sand_p_rating", "rating"}},
		{"empty", models.Rating{}, []string{"rating"}},
		{"bad_moodys", models.Rating{MoodysRating: "AAA"}, []string{"moodys_rating"}},
		{"bad_sp", models.Rating{SandPRating: "Aaa"}, []string{"sand_p_rating"}},
		{"bad_order", models.Rating{FitchRating: "D", OrderNumber: intPtr(0)}, []string{"order_number"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.rating
			assert.Equal(t, tt.wantFields, fields(Rating(&r)))
		})
	}
}

func TestRuleName(t *testing.T) {
	assert.Empty(t, RuleName(&models.RuleName{Name: "rule", Template: strings.Repeat("t", 512)}))

	errs := RuleName(&models.RuleName{Template: strings.Repeat("t", 513), SQLStr: strings.Repeat("s", 126)})
	assert.Equal(t, []string{"name", "template", "sql_str"}, fields(errs))
}

func TestTrade(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := Trade(&models.Trade{Account: "ACC1", Type: "SPOT", BuyQuantity: f64(10), BuyPrice: f64(1.25)})
		assert.Empty(t, errs)
	})

	t.Run("account_must_be_alphanumeric", func(t *testing.T) {
		errs := Trade(&models.Trade{Account: "ACC-1", Type: "SPOT", SellQuantity: f64(1), SellPrice: f64(1)})
		assert.Equal(t, []string{"account"}, fields(errs))
	})

	t.Run("zero_quantity_rejected_when_present", func(t *testing.T) {
		errs := Trade(&models.Trade{Account: "A", Type: "T", BuyQuantity: f64(0), SellQuantity: f64(20), SellPrice: f64(5)})
		assert.Equal(t, []string{"buy_quantity"}, fields(errs))
	})

	t.Run("cross_field_messages", func(t *testing.T) {
		errs := Trade(&models.Trade{Account: "A", Type: "T", BuyQuantity: f64(100)})
		require.Len(t, errs, 1)
		assert.Equal(t, "buy_price", errs[0].Field)
	})
}

func TestUserAndPassword(t *testing.T) {
	assert.Empty(t, User(&models.User{Username: "bob", Fullname: "Bob", Role: "USER"}))
	assert.Equal(t, []string{"username", "fullname", "role"}, fields(User(&models.User{})))

	assert.Empty(t, Password("Password1!"))
	assert.Equal(t, []string{"password"}, fields(Password("weak")))
}
