// Package password wraps the one-way hashing primitive used for user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Encoder turns plaintext into an opaque hash and checks plaintext against it.
type Encoder interface {
	Encode(plaintext string) (string, error)
	Matches(hash, plaintext string) bool
}

type bcryptEncoder struct {
	cost int
}

// NewBcryptEncoder returns an Encoder backed by bcrypt. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewBcryptEncoder(cost int) Encoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptEncoder{cost: cost}
}

func (e *bcryptEncoder) Encode(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *bcryptEncoder) Matches(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
