package middleware

import (
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/cookie"
	"venue-booking-web/internal/session"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

// cookieStorage persists the session record in the signed eventbooking.auth
// cookie. Writes are visible to later reads within the same request.
type cookieStorage struct {
	c   *gin.Context
	jar *cookie.Jar

	overridden bool
	raw        string
	present    bool
}

func newCookieStorage(c *gin.Context, jar *cookie.Jar) *cookieStorage {
	return &cookieStorage{c: c, jar: jar}
}

func (s *cookieStorage) Read() (string, bool) {
	if s.overridden {
		return s.raw, s.present
	}
	return s.jar.Get(s.c, session.StorageKey)
}

func (s *cookieStorage) Write(raw string) error {
	if err := s.jar.Set(s.c, session.StorageKey, raw); err != nil {
		return err
	}
	s.overridden, s.raw, s.present = true, raw, true
	return nil
}

func (s *cookieStorage) Remove() error {
	s.jar.Clear(s.c, session.StorageKey)
	s.overridden, s.raw, s.present = true, "", false
	return nil
}

// Session restores the caller's session from its cookie and exposes it to later
// handlers. A cookie that fails verification reads as no session at all.
func Session(cfg config.CookieConfig, clk clock.Clock) gin.HandlerFunc {
	jar := cookie.NewJar(cfg)
	return func(c *gin.Context) {
		c.Set(ctxSessionKey, session.Load(newCookieStorage(c, jar), clk))
		c.Next()
	}
}

// GetSession returns the request's session. Outside the Session middleware
// it returns an empty, memory-backed one.
func GetSession(c *gin.Context) *session.Store {
	if v, exists := c.Get(ctxSessionKey); exists {
		if s, ok := v.(*session.Store); ok {
			return s
		}
	}
	s := session.Load(session.NewMemoryStorage(), nil)
	c.Set(ctxSessionKey, s)
	return s
}
