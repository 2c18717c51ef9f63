//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/handler/web"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/usecase/booking"
	th "venue-booking-web/tests/common/httptest"
	bookingmock "venue-booking-web/tests/mock/booking"
	commandsmock "venue-booking-web/tests/mock/commands"
	queriesmock "venue-booking-web/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	ctrl := gomock.NewController(t)

	templates, err := web.NewTemplates()
	require.NoError(t, err)

	broker := checkout.NewBroker(cfg.Checkout, nil, nil)
	runner := booking.NewRunner(bookingmock.NewMockBooker(ctrl), broker, cfg.Checkout, clock.NewRealClock(), nil)
	venues := web.NewVenueHandler(queriesmock.NewMockVenueQueries(ctrl))

	engine := gin.New()
	handler.NewRouter(engine, cfg, templates, middleware.NewLogger(cfg.Log), clock.NewRealClock(), metrics.New(), handler.Handlers{
		Venue:    venues,
		Checkout: web.NewCheckoutHandler(runner, broker, venues, cfg.Checkout),
		Auth:     web.NewAuthHandler(commandsmock.NewMockAuthCommands(ctrl)),
		Booking:  web.NewBookingHandler(queriesmock.NewMockBookingQueries(ctrl), commandsmock.NewMockBookingCommands(ctrl)),
		Owner:    web.NewOwnerHandler(queriesmock.NewMockOwnerQueries(ctrl), commandsmock.NewMockOwnerCommands(ctrl)),
		Admin:    web.NewAdminHandler(queriesmock.NewMockAdminQueries(ctrl), commandsmock.NewMockAdminCommands(ctrl)),
		Profile:  web.NewProfileHandler(queriesmock.NewMockProfileQueries(ctrl)),
	})
	return engine
}

func TestPublicEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		w := th.PerformRequest(t, router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("metrics", func(t *testing.T) {
		w := th.PerformRequest(t, router, http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	t.Run("root and unknown paths go to venues", func(t *testing.T) {
		th.AssertRedirect(t, th.PerformRequest(t, router, http.MethodGet, "/", nil), "/venues")
		th.AssertRedirect(t, th.PerformRequest(t, router, http.MethodGet, "/nowhere", nil), "/venues")
	})
}

func TestGuardedRoutes(t *testing.T) {
	router := newTestRouter(t)
	customer := th.SessionCookie(t, user.LoginResponse{Token: "tok", UserID: 7, Email: "c@example.com", Role: user.RoleCustomer})
	owner := th.SessionCookie(t, user.LoginResponse{Token: "tok", UserID: 8, Email: "o@example.com", Role: user.RoleVenueOwner})

	cases := []struct {
		name     string
		method   string
		path     string
		cookie   *http.Cookie
		location string
	}{
		{name: "anonymous my bookings", method: http.MethodGet, path: "/my-bookings", location: "/login?from=%2Fmy-bookings"},
		{name: "anonymous profile", method: http.MethodGet, path: "/me", location: "/login?from=%2Fme"},
		{name: "anonymous owner keeps query", method: http.MethodGet, path: "/owner?venue=3", location: "/login?from=%2Fowner%3Fvenue%3D3"},
		{name: "anonymous checkout", method: http.MethodGet, path: "/checkout/6f1c2d9e-8a43-4c55-9a0e-0d2b7f8c1e11", location: "/login?from=%2Fcheckout%2F6f1c2d9e-8a43-4c55-9a0e-0d2b7f8c1e11"},
		{name: "customer on owner dashboard", method: http.MethodGet, path: "/owner", cookie: customer, location: "/"},
		{name: "customer on admin", method: http.MethodGet, path: "/admin", cookie: customer, location: "/"},
		{name: "owner on my bookings", method: http.MethodGet, path: "/my-bookings", cookie: owner, location: "/"},
		{name: "owner posting admin action", method: http.MethodPost, path: "/admin/users/5/delete", cookie: owner, location: "/"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var cookies []*http.Cookie
			if c.cookie != nil {
				cookies = append(cookies, c.cookie)
			}
			w := th.PerformRequest(t, router, c.method, c.path, nil, cookies...)
			th.AssertRedirect(t, w, c.location)
		})
	}
}
