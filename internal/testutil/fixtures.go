package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"poseidon/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "Password1!"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

func create(t *testing.T, db *gorm.DB, rec interface{}, what string) {
	t.Helper()
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test %s: %v", what, err)
	}
}

// CreateTestUser creates a USER-role user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, fmt.Sprintf("user%d", nextID()), "USER")
}

// CreateTestUserWithRole creates a user with the given username and role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Base:     models.Base{Version: 1},
		Username: username,
		Password: string(hash),
		Fullname: "Test " + username,
		Role:     role,
	}
	create(t, db, user, "user")
	return user
}

// CreateTestBidList creates a bid list owned by creator.
func CreateTestBidList(t *testing.T, db *gorm.DB, creator string) *models.BidList {
	t.Helper()

	now := time.Now().UTC()
	bid := &models.BidList{
		Base:         models.Base{Version: 1},
		Account:      fmt.Sprintf("ACC%d", nextID()),
		Type:         "SPOT",
		BidQuantity:  Float(10),
		CreationName: creator,
		CreationDate: &now,
	}
	create(t, db, bid, "bid list")
	return bid
}

// CreateTestCurvePoint creates a curve point owned by creator.
func CreateTestCurvePoint(t *testing.T, db *gorm.DB, creator string) *models.CurvePoint {
	t.Helper()

	now := time.Now().UTC()
	point := &models.CurvePoint{
		Base:         models.Base{Version: 1},
		CurveID:      Int(int(nextID()%100) + 1),
		AsOfDate:     &now,
		Term:         decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
		Value:        decimal.NewNullDecimal(decimal.RequireFromString("2.25")),
		CreationDate: &now,
		CreationName: creator,
	}
	create(t, db, point, "curve point")
	return point
}

// CreateTestRating creates a rating with all three agency ratings set.
func CreateTestRating(t *testing.T, db *gorm.DB) *models.Rating {
	t.Helper()

	rating := &models.Rating{
		Base:         models.Base{Version: 1},
		MoodysRating: "Aa2",
		SandPRating:  "AA",
		FitchRating:  "AA",
		OrderNumber:  Int(int(nextID())),
	}
	create(t, db, rating, "rating")
	return rating
}

// CreateTestRuleName creates a rule with a unique name.
func CreateTestRuleName(t *testing.T, db *gorm.DB) *models.RuleName {
	t.Helper()

	rule := &models.RuleName{
		Base:        models.Base{Version: 1},
		Name:        fmt.Sprintf("rule-%d", nextID()),
		Description: "test rule",
	}
	create(t, db, rule, "rule name")
	return rule
}

// CreateTestTrade creates a buy trade credited to creator.
func CreateTestTrade(t *testing.T, db *gorm.DB, creator string) *models.Trade {
	t.Helper()

	now := time.Now().UTC()
	trade := &models.Trade{
		Base:         models.Base{Version: 1},
		Account:      fmt.Sprintf("ACC%d", nextID()),
		Type:         "SPOT",
		BuyQuantity:  Float(5),
		BuyPrice:     Float(101.5),
		TradeDate:    &now,
		CreationName: creator,
		CreationDate: &now,
	}
	create(t, db, trade, "trade")
	return trade
}
