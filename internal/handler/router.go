package handler

import (
	"html/template"
	"net/http"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/handler/routeguard"
	"venue-booking-web/internal/handler/web"
	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the page handlers the router mounts.
type Handlers struct {
	fx.In

	Venue    *web.VenueHandler
	Checkout *web.CheckoutHandler
	Auth     *web.AuthHandler
	Booking  *web.BookingHandler
	Owner    *web.OwnerHandler
	Admin    *web.AdminHandler
	Profile  *web.ProfileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, templates *template.Template, logger *middleware.Logger, clk clock.Clock, m *metrics.Metrics, h Handlers) {
	engine.SetHTMLTemplate(templates)
	setupMiddleware(engine, cfg, logger, clk)
	setupRoutes(engine, h, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, clk clock.Clock) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// Session before logging so requests are logged with their user
	engine.Use(middleware.Session(cfg.Cookie, clk))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	engine.GET("/", toVenues)
	engine.NoRoute(toVenues)

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/venues", Handler: h.Venue.List},
		{Method: http.MethodGet, Path: "/venues/:id", Handler: h.Venue.Detail},
		{Method: http.MethodPost, Path: "/venues/:id/slots/:slotID/book", Handler: h.Checkout.Book},
		{Method: http.MethodGet, Path: "/login", Handler: h.Auth.LoginPage},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		{Method: http.MethodGet, Path: "/register", Handler: h.Auth.RegisterPage},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
	})

	checkout := engine.Group("/checkout/:attempt")
	checkout.Use(routeguard.Require())
	{
		addRoutes(checkout, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Checkout.Checkout},
			{Method: http.MethodPost, Path: "/complete", Handler: h.Checkout.Complete},
			{Method: http.MethodPost, Path: "/dismiss", Handler: h.Checkout.Dismiss},
			{Method: http.MethodGet, Path: "/result", Handler: h.Checkout.Result},
		})
	}

	bookings := engine.Group("/my-bookings")
	bookings.Use(routeguard.Require(user.RoleCustomer, user.RoleAdmin))
	{
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
		})
	}

	owner := engine.Group("/owner")
	owner.Use(routeguard.Require(user.RoleVenueOwner, user.RoleAdmin))
	{
		addRoutes(owner, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Owner.Dashboard},
			{Method: http.MethodPost, Path: "/venues", Handler: h.Owner.CreateVenue},
			{Method: http.MethodPost, Path: "/venues/:id", Handler: h.Owner.UpdateVenue},
			{Method: http.MethodPost, Path: "/venues/:id/delete", Handler: h.Owner.DeleteVenue},
			{Method: http.MethodPost, Path: "/venues/:id/slots", Handler: h.Owner.CreateSlot},
			{Method: http.MethodPost, Path: "/venues/:id/slots/:slotID/delete", Handler: h.Owner.DeleteSlot},
		})
	}

	admin := engine.Group("/admin")
	admin.Use(routeguard.Require(user.RoleAdmin))
	{
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Admin.Dashboard},
			{Method: http.MethodPost, Path: "/users", Handler: h.Admin.CreateUser},
			{Method: http.MethodPost, Path: "/users/:id", Handler: h.Admin.UpdateUser},
			{Method: http.MethodPost, Path: "/users/:id/delete", Handler: h.Admin.DeleteUser},
		})
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/me", Handler: h.Profile.Me, Mw: []gin.HandlerFunc{routeguard.Require()}},
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func toVenues(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/venues")
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
