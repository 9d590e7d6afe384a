package services

import (
	"strings"
	"testing"

	"poseidon/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log("alice", "CREATE", "BidList", 1, "10.0.0.1", map[string]any{"account": "Acme"})
	svc.Log("bob", "DELETE", "Trade", 2, "10.0.0.2", nil)

	entries, err := svc.FindRecent(10)
	testutil.AssertNoError(t, err)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Username != "bob" || entries[0].Changes != "" {
		t.Errorf("expected newest entry first without changes, got %+v", entries[0])
	}
	if !strings.Contains(entries[1].Changes, `"account":"Acme"`) {
		t.Errorf("expected changes to be recorded as JSON, got %q", entries[1].Changes)
	}
}
