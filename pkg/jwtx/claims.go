package jwtx

import (
	"time"

	"github.com/aussiebroadwan/securefile/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTokenTTL bounds the cookie token. The inactivity countdown
// usually ends the session long before this.
const DefaultSessionTokenTTL = 8 * time.Hour

// Claims are the session-token claims carried in the browser cookie.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID, matches the server-side monitor
	SID string `json:"sid"`

	// Username as typed on the password step
	Username string `json:"username,omitempty"`

	// Authentication Methods Reference ["pwd","otp"]
	AMR []string `json:"amr,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a freshly
// authenticated session.
func NewSessionClaims(sid, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:      sid,
		Username: username,
		AMR:      []string{"pwd", "otp"},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	return cryptox.MustGenerateToken(cryptox.TokenSize128)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
