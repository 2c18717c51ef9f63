//go:build unit

package routeguard_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/handler/routeguard"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/session"
	th "venue-booking-web/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sessionAs(t *testing.T, role user.Role) *session.Store {
	t.Helper()
	s := session.Load(session.NewMemoryStorage(), nil)
	if role != "" {
		err := s.Login(user.LoginResponse{Token: "tok", UserID: 1, Email: "a@example.com", Role: role})
		assert.NoError(t, err)
	}
	return s
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name     string
		role     user.Role
		required []user.Role
		want     routeguard.Decision
	}{
		{
			name:     "anonymous on guarded route",
			required: []user.Role{user.RoleAdmin},
			want:     routeguard.Decision{Outcome: routeguard.RedirectLogin, Location: "/login?from=%2Fadmin"},
		},
		{
			name: "anonymous on any-role route",
			want: routeguard.Decision{Outcome: routeguard.RedirectLogin, Location: "/login?from=%2Fadmin"},
		},
		{
			name:     "customer on admin route",
			role:     user.RoleCustomer,
			required: []user.Role{user.RoleAdmin},
			want:     routeguard.Decision{Outcome: routeguard.RedirectDefault, Location: "/"},
		},
		{
			name:     "admin on admin route",
			role:     user.RoleAdmin,
			required: []user.Role{user.RoleAdmin},
			want:     routeguard.Decision{Outcome: routeguard.Render},
		},
		{
			name:     "admin on customer route",
			role:     user.RoleAdmin,
			required: []user.Role{user.RoleCustomer, user.RoleAdmin},
			want:     routeguard.Decision{Outcome: routeguard.Render},
		},
		{
			name: "owner on any-role route",
			role: user.RoleVenueOwner,
			want: routeguard.Decision{Outcome: routeguard.Render},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := routeguard.Evaluate(sessionAs(t, c.role), c.required, "/admin")
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEvaluateFollowsLogout(t *testing.T) {
	s := sessionAs(t, user.RoleAdmin)
	assert.Equal(t, routeguard.Render, routeguard.Evaluate(s, []user.Role{user.RoleAdmin}, "/admin").Outcome)

	assert.NoError(t, s.Logout())
	assert.Equal(t, routeguard.RedirectLogin, routeguard.Evaluate(s, []user.Role{user.RoleAdmin}, "/admin").Outcome)
}

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Session(config.NewTestConfig().Cookie, clock.NewRealClock()))
	engine.GET("/owner", routeguard.Require(user.RoleVenueOwner, user.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	t.Run("anonymous keeps the query in from", func(t *testing.T) {
		w := th.PerformRequest(t, engine, http.MethodGet, "/owner?venue=3", nil)
		th.AssertRedirect(t, w, "/login?from=%2Fowner%3Fvenue%3D3")
	})

	t.Run("wrong role goes home", func(t *testing.T) {
		cookie := th.SessionCookie(t, user.LoginResponse{Token: "tok", UserID: 2, Role: user.RoleCustomer})
		w := th.PerformRequest(t, engine, http.MethodGet, "/owner", nil, cookie)
		th.AssertRedirect(t, w, "/")
	})

	t.Run("forged unsigned admin cookie is sent to login", func(t *testing.T) {
		forged := base64.RawURLEncoding.EncodeToString([]byte(`{"token":"tok","user":{"id":1,"role":"ADMIN"}}`))
		w := th.PerformRequest(t, engine, http.MethodGet, "/owner", nil,
			&http.Cookie{Name: session.StorageKey, Value: forged})
		th.AssertRedirect(t, w, "/login?from=%2Fowner")
	})

	t.Run("owner renders", func(t *testing.T) {
		cookie := th.SessionCookie(t, user.LoginResponse{Token: "tok", UserID: 3, Role: user.RoleVenueOwner})
		w := th.PerformRequest(t, engine, http.MethodGet, "/owner", nil, cookie)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dashboard", w.Body.String())
	})
}
