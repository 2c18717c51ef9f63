//go:build unit

package web_test

import (
	"net/http"
	"testing"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/handler/web"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/tests/common/builder"
	th "venue-booking-web/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testToken = "tok"

// newRouter returns an engine with the page templates, sessions and error pages wired.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := web.NewTemplates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(middleware.Session(config.NewTestConfig().Cookie, clock.NewRealClock()))
	router.Use(middleware.ErrorHandler())
	return router
}

func loginResponse(id int64, role user.Role) user.LoginResponse {
	return builder.NewUserBuilder().WithID(id).WithRole(role).BuildLoginResponse(testToken)
}

func sessionCookie(t *testing.T, id int64, role user.Role) *http.Cookie {
	t.Helper()
	return th.SessionCookie(t, loginResponse(id, role))
}
