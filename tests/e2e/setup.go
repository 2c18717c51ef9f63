//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venue-booking-web/cmd/bootstrap"
	"venue-booking-web/cmd/bootstrap/components"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/tests/e2e/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite environment: fake backend plus the full frontend
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*FakeBackend, *httptest.Server, config.Config) {
	gin.SetMode(gin.TestMode)

	backend := StartFakeBackend(t)
	cfg := createTestConfig(backend.Server.URL)

	handler, app := buildE2EApp(cfg)
	require.NotNil(t, handler, "failed to build the frontend")

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return backend, server, cfg
}

// ------------------------------------------------------------
// Builds the application the way main does, minus the listener
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (http.Handler, *fx.App) {
	var (
		engine  *gin.Engine
		protect func(http.Handler) http.Handler
	)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.InfraModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&engine, &protect),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return protect(engine), app
}

func createTestConfig(backendURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Backend.BaseURL = backendURL
	testConfig.Checkout.ScriptURL = backendURL + "/checkout.js"
	testConfig.Checkout.Timeout = 10 * time.Second
	return testConfig
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Backend *FakeBackend
	Server  *httptest.Server
	Config  config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Backend, s.Server, s.Config = setupE2EEnvironment(s.T())
}

// NewBrowser returns a fresh browser with no cookies.
func (s *SharedSuite) NewBrowser() *helper.Browser {
	return helper.NewBrowser(s.T(), s.Server.URL)
}

// LoginAs signs b in and expects to land on /venues.
func (s *SharedSuite) LoginAs(b *helper.Browser, email string) {
	s.T().Helper()

	b.Get("/login")
	p := b.Post("/login", map[string][]string{"email": {email}, "password": {Password}})
	s.Require().Equal(http.StatusSeeOther, p.Status, p.Body)
	s.Require().Equal("/venues", p.Location)
}
