package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The frontend never holds the signing key. Tokens are read without verification,
// only to learn when the backend will stop accepting them.
var parser = jwt.NewParser()

// Expiry returns the exp claim of token. ok is false for opaque tokens
// and for JWTs without exp.
func Expiry(token string) (exp time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	nd, err := claims.GetExpirationTime()
	if err != nil || nd == nil {
		return time.Time{}, false
	}
	return nd.Time, true
}

// Expired reports whether token carries an exp claim at or before now.
func Expired(token string, now time.Time) bool {
	exp, ok := Expiry(token)
	if !ok {
		return false
	}
	return !now.Before(exp)
}
