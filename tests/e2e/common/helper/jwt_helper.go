//go:build e2e

package helper

import (
	"strconv"
	"testing"
	"time"

	"venue-booking-web/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testSecret signs tokens for the fake backend. The frontend never verifies them.
const testSecret = "e2e-backend-secret"

// IssueToken mints the kind of JWT the backend hands out on login.
func IssueToken(t *testing.T, userID int64, role user.Role, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// CreateExpiredToken returns a token whose exp is already in the past.
func CreateExpiredToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	return IssueToken(t, userID, role, -time.Minute)
}
