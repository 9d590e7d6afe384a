package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptEncoder(t *testing.T) {
	enc := NewBcryptEncoder(bcrypt.MinCost)

	hash, err := enc.Encode("Password1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password1!", hash)
	assert.True(t, enc.Matches(hash, "Password1!"))
	assert.False(t, enc.Matches(hash, "Password2!"))

	again, err := enc.Encode("Password1!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "bcrypt salts every hash")
}

func TestNewBcryptEncoderCostFallback(t *testing.T) {
	enc := NewBcryptEncoder(0).(*bcryptEncoder)
	assert.Equal(t, bcrypt.DefaultCost, enc.cost)
}
