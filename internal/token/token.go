// Package token provides the signed bearer-token primitive used for
// authentication: issue(claims, ttl) and verify(token) over an HMAC secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/snakearcade-go/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// DefaultTTL is the access-token lifetime when none is configured
const DefaultTTL = 30 * time.Minute

// Signer issues and verifies HS256-signed tokens bound to an account email
type Signer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewSigner creates a Signer. A zero ttl falls back to DefaultTTL.
func NewSigner(secret []byte, ttl time.Duration, clk clock.Clock) *Signer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Signer{secret: secret, ttl: ttl, clock: clk}
}

// Issue signs a token whose subject is the given email, expiring after the
// configured TTL.
func (s *Signer) Issue(email string) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the bound email
func (s *Signer) Verify(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
