package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretSize is the shortest HMAC secret NewHS256 accepts.
const MinSecretSize = 32

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256 signs and verifies session tokens with a single shared secret.
// The cookie never leaves this service so there is no key set to publish.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 returns an HS256 signer/verifier for the given secret and issuer.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretSize {
		return nil, errors.New("jwtx: HS256 secret too short")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}
