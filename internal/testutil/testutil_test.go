package testutil_test

import (
	"testing"

	"poseidon/internal/errors"
	"poseidon/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"bid_list", "curve_point", "rating", "rule_name", "trade", "users", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestRuleName(t, first)

	var count int64
	second.Table("rule_name").Count(&count)
	if count != 0 {
		t.Errorf("expected isolated databases, second has %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	bid := testutil.CreateTestBidList(t, db, user.Username)
	if bid.Owner() != user.Username {
		t.Errorf("expected owner %q, got %q", user.Username, bid.Owner())
	}

	point := testutil.CreateTestCurvePoint(t, db, user.Username)
	if !point.Term.Valid || point.Term.Decimal.String() != "1.5" {
		t.Errorf("expected term 1.5, got %v", point.Term)
	}

	rating := testutil.CreateTestRating(t, db)
	if rating.Version != 1 {
		t.Errorf("expected version 1, got %d", rating.Version)
	}

	trade := testutil.CreateTestTrade(t, db, user.Username)
	if trade.BuyPrice == nil || *trade.BuyPrice != 101.5 {
		t.Errorf("expected buy price 101.5, got %v", trade.BuyPrice)
	}

	rule := testutil.CreateTestRuleName(t, db)
	if rule.Name == "" {
		t.Error("rule name should be set")
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrNotFound, "NOT_FOUND")
	testutil.AssertFieldError(t, errors.Validation([]errors.FieldError{{Field: "account", Message: "Account is mandatory"}}), "account")
}
