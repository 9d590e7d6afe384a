package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

func TestCanDelete(t *testing.T) {
	admin := Actor{Username: "root", Roles: []string{RoleAdmin}}
	bob := Actor{Username: "bob", Roles: []string{"USER"}}

	tests := []struct {
		name   string
		actor  Actor
		record models.Owned
		want   bool
	}{
		{"admin_any_owner", admin, &models.BidList{CreationName: "alice"}, true},
		{"admin_unowned", admin, &models.CurvePoint{}, true},
		{"owner", bob, &models.BidList{CreationName: "bob"}, true},
		{"other_owner", bob, &models.BidList{CreationName: "alice"}, false},
		{"unowned_non_admin", bob, &models.CurvePoint{}, false},
		{"empty_username_never_matches_unowned", Actor{Roles: []string{"USER"}}, &models.BidList{}, false},
		{"case_sensitive", bob, &models.BidList{CreationName: "Bob"}, false},
		{"role_name_exact", Actor{Username: "eve", Roles: []string{"admin"}}, &models.BidList{CreationName: "alice"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.actor, tt.record))
		})
	}
}

func TestAuthorizeDelete(t *testing.T) {
	err := AuthorizeDelete(Actor{Username: "bob", Roles: []string{"USER"}}, &models.BidList{CreationName: "alice"})
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)

	assert.NoError(t, AuthorizeDelete(Actor{Username: "alice"}, &models.BidList{CreationName: "alice"}))
}
