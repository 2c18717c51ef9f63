//go:build unit

package cookie_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = req
	return c, rec
}

func testCookieConfig() config.CookieConfig {
	cfg := config.NewTestConfig().Cookie
	cfg.SameSite = "Strict"
	cfg.Secure = true
	return cfg
}

func readBack(t *testing.T, jar *cookie.Jar, set *http.Cookie) (string, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(set)
	c, _ := newContext(req)
	return jar.Get(c, set.Name)
}

func TestSetThenGet(t *testing.T) {
	jar := cookie.NewJar(testCookieConfig())
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, jar.Set(c, "eventbooking.auth", `{"token":"a b;c"}`))

	res := rec.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	set := cookies[0]
	assert.True(t, set.HttpOnly)
	assert.True(t, set.Secure)
	assert.Equal(t, http.SameSiteStrictMode, set.SameSite)
	assert.Equal(t, 3600, set.MaxAge)

	got, ok := readBack(t, jar, set)
	require.True(t, ok)
	assert.Equal(t, `{"token":"a b;c"}`, got)
}

func TestGetRejectsUnverifiedValues(t *testing.T) {
	jar := cookie.NewJar(testCookieConfig())

	t.Run("absent", func(t *testing.T) {
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
		_, ok := jar.Get(c, "eventbooking.auth")
		assert.False(t, ok)
	})

	t.Run("unsigned base64 payload", func(t *testing.T) {
		forged := base64.RawURLEncoding.EncodeToString([]byte(`{"token":"x","user":{"id":1,"role":"ADMIN"}}`))
		_, ok := readBack(t, jar, &http.Cookie{Name: "eventbooking.auth", Value: forged})
		assert.False(t, ok)
	})

	t.Run("signed with another key", func(t *testing.T) {
		other := testCookieConfig()
		other.HashKey = "another-hash-key-of-32-bytes-000"
		value, err := cookie.NewJar(other).Encode("eventbooking.auth", "v")
		require.NoError(t, err)

		_, ok := readBack(t, jar, &http.Cookie{Name: "eventbooking.auth", Value: value})
		assert.False(t, ok)
	})

	t.Run("value signed for another cookie name", func(t *testing.T) {
		value, err := jar.Encode("other", "v")
		require.NoError(t, err)

		_, ok := readBack(t, jar, &http.Cookie{Name: "eventbooking.auth", Value: value})
		assert.False(t, ok)
	})

	t.Run("tampered payload", func(t *testing.T) {
		value, err := jar.Encode("eventbooking.auth", "v")
		require.NoError(t, err)
		mid := len(value) / 2
		flipped := byte('A')
		if value[mid] == 'A' {
			flipped = 'B'
		}
		tampered := value[:mid] + string(flipped) + value[mid+1:]

		_, ok := readBack(t, jar, &http.Cookie{Name: "eventbooking.auth", Value: tampered})
		assert.False(t, ok)
	})
}

func TestEncryptedWithBlockKey(t *testing.T) {
	cfg := testCookieConfig()
	cfg.BlockKey = "0123456789abcdef"
	jar := cookie.NewJar(cfg)

	value, err := jar.Encode("eventbooking.auth", `{"token":"secret-token"}`)
	require.NoError(t, err)
	decoded, err := base64.URLEncoding.DecodeString(value)
	require.NoError(t, err)
	assert.NotContains(t, string(decoded), "secret-token")

	got, ok := readBack(t, jar, &http.Cookie{Name: "eventbooking.auth", Value: value})
	require.True(t, ok)
	assert.Equal(t, `{"token":"secret-token"}`, got)
}

func TestClear(t *testing.T) {
	jar := cookie.NewJar(config.CookieConfig{HashKey: "fedcba9876543210fedcba9876543210"})
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	jar.Clear(c, "eventbooking.auth")

	res := rec.Result()
	defer res.Body.Close()
	require.Len(t, res.Cookies(), 1)
	assert.Equal(t, -1, res.Cookies()[0].MaxAge)
}
