//go:build unit

package middleware_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/cookie"
	"venue-booking-web/internal/session"
	th "venue-booking-web/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Session(config.NewTestConfig().Cookie, clock.NewRealClock()))

	engine.GET("/whoami", func(c *gin.Context) {
		identity, ok := middleware.GetSession(c).Identity()
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, identity.Email)
	})
	engine.POST("/login", func(c *gin.Context) {
		s := middleware.GetSession(c)
		_ = s.Login(user.LoginResponse{Token: "tok", UserID: 9, Email: "z@example.com", Role: user.RoleAdmin})
		identity, _ := s.Identity()
		c.String(http.StatusOK, identity.Email)
	})
	engine.POST("/logout", func(c *gin.Context) {
		s := middleware.GetSession(c)
		_ = s.Logout()
		c.String(http.StatusOK, "%t", s.Authenticated())
	})
	return engine
}

func TestSessionMiddleware(t *testing.T) {
	engine := newSessionEngine()

	t.Run("no cookie is anonymous", func(t *testing.T) {
		w := th.PerformRequest(t, engine, http.MethodGet, "/whoami", nil)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("garbage cookie is anonymous", func(t *testing.T) {
		w := th.PerformRequest(t, engine, http.MethodGet, "/whoami", nil,
			&http.Cookie{Name: session.StorageKey, Value: "bm90IGpzb24"})
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("unsigned admin record is anonymous", func(t *testing.T) {
		forged := base64.RawURLEncoding.EncodeToString([]byte(`{"token":"tok","user":{"id":1,"role":"ADMIN"}}`))
		w := th.PerformRequest(t, engine, http.MethodGet, "/whoami", nil,
			&http.Cookie{Name: session.StorageKey, Value: forged})
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("tampered signed cookie is anonymous", func(t *testing.T) {
		cookie := th.SessionCookie(t, user.LoginResponse{Token: "tok", UserID: 1, Email: "a@example.com", Role: user.RoleCustomer})
		mid := len(cookie.Value) / 2
		flipped := "A"
		if cookie.Value[mid] == 'A' {
			flipped = "B"
		}
		cookie.Value = cookie.Value[:mid] + flipped + cookie.Value[mid+1:]

		w := th.PerformRequest(t, engine, http.MethodGet, "/whoami", nil, cookie)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("cookie signed with another key is anonymous", func(t *testing.T) {
		other := config.NewTestConfig().Cookie
		other.HashKey = "another-hash-key-of-32-bytes-000"
		value, err := cookie.NewJar(other).Encode(session.StorageKey, `{"token":"tok","user":{"userId":1,"email":"x@example.com","role":"ADMIN"}}`)
		require.NoError(t, err)

		w := th.PerformRequest(t, engine, http.MethodGet, "/whoami", nil,
			&http.Cookie{Name: session.StorageKey, Value: value})
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("login cookie round-trips", func(t *testing.T) {
		w := th.PerformRequest(t, engine, http.MethodPost, "/login", nil)
		require.Equal(t, "z@example.com", w.Body.String())

		cookie := th.ExtractCookie(w, session.StorageKey)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		w = th.PerformRequest(t, engine, http.MethodGet, "/whoami", nil, cookie)
		assert.Equal(t, "z@example.com", w.Body.String())
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		cookie := th.SessionCookie(t, user.LoginResponse{Token: "tok", UserID: 1, Email: "a@example.com", Role: user.RoleCustomer})
		w := th.PerformRequest(t, engine, http.MethodPost, "/logout", nil, cookie)
		assert.Equal(t, "false", w.Body.String())

		cleared := th.ExtractCookie(w, session.StorageKey)
		require.NotNil(t, cleared)
		assert.Less(t, cleared.MaxAge, 0)
	})
}

func TestGetSessionWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%t", middleware.GetSession(c).Authenticated())
	})

	w := th.PerformRequest(t, engine, http.MethodGet, "/", nil)
	assert.Equal(t, "false", w.Body.String())
}
