package main

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the payload of a session token. The claim names match what
// the frontend already decodes, so they must not change.
type tokenClaims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// tokenService issues and verifies stateless HS256 session tokens. There is
// no revocation list: a token stays valid until its embedded expiry, and
// logout is purely client-side.
type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func newTokenService(secret string, ttl time.Duration) *tokenService {
	return &tokenService{secret: []byte(secret), ttl: ttl}
}

// issue signs a token for the given user, expiring ttl from now.
func (s *tokenService) issue(userID int, username string) (string, error) {
	claims := &tokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// verify checks the signature and expiry and returns the decoded claims.
// Every failure mode (malformed, tampered, expired, wrong algorithm) reports
// the same way; callers cannot distinguish them. Verification is pure and
// does no I/O.
func (s *tokenService) verify(token string) (*tokenClaims, bool) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}
