//go:build unit

package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"venue-booking-web/internal/domain/user"
	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/handler/web"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/session"
	"venue-booking-web/tests/common/builder"
	th "venue-booking-web/tests/common/httptest"
	commandsmock "venue-booking-web/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)

	h := web.NewAuthHandler(s.mockCommands)
	s.router.GET("/login", h.LoginPage)
	s.router.POST("/login", h.Login)
	s.router.POST("/logout", h.Logout)
	s.router.GET("/register", h.RegisterPage)
	s.router.POST("/register", h.Register)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLoginPage() {
	s.Run("keeps the return path", func() {
		w := th.PerformRequest(s.T(), s.router, http.MethodGet, "/login?from=/my-bookings", nil)

		th.AssertPage(s.T(), w, http.StatusOK, `name="from" value="/my-bookings"`)
		th.AssertNoFragment(s.T(), w, "Registered successfully.")
	})

	s.Run("shows the registration notice", func() {
		w := th.PerformRequest(s.T(), s.router, http.MethodGet, "/login?registered=1", nil)

		th.AssertPage(s.T(), w, http.StatusOK, "Registered successfully. You can now log in.")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	creds := builder.NewAuthBuilder().WithPassword("secret").WithFrom("/my-bookings")
	form := creds.BuildForm()
	expected := reqdto.LoginForm{Email: "someone@example.com", Password: "secret", From: "/my-bookings"}

	s.Run("success: stores the session and returns to from", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), expected).
			Return(loginResponse(7, user.RoleCustomer), nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/login", form)

		th.AssertRedirect(s.T(), w, "/my-bookings")
		cookie := th.ExtractCookie(w, session.StorageKey)
		s.Require().NotNil(cookie)
		s.NotEmpty(cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("success: off-site from falls back to venues", func() {
		offsite := builder.NewAuthBuilder().WithFrom("//evil.example").BuildForm()
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(loginResponse(7, user.RoleCustomer), nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/login", offsite)

		th.AssertRedirect(s.T(), w, "/venues")
	})

	s.Run("error: rejected credentials show the backend message", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), expected).
			Return(user.LoginResponse{}, &backend.APIError{Message: "Invalid credentials", Status: http.StatusUnauthorized}).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/login", form)

		th.AssertPage(s.T(), w, http.StatusUnauthorized, "Invalid credentials (HTTP 401)", `value="someone@example.com"`)
		s.Nil(th.ExtractCookie(w, session.StorageKey))
	})

	s.Run("error: missing password never reaches the backend", func() {
		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/login", url.Values{"email": {"someone@example.com"}})

		th.AssertPage(s.T(), w, http.StatusBadRequest, "Please fill in all required fields.")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/logout", url.Values{},
		sessionCookie(s.T(), 7, user.RoleCustomer))

	th.AssertRedirect(s.T(), w, "/login")
	cookie := th.ExtractCookie(w, session.StorageKey)
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
	s.Negative(cookie.MaxAge)
}

func (s *AuthHandlerTestSuite) TestRegister() {
	form := url.Values{
		"email":     {"new@example.com"},
		"password":  {"secret"},
		"firstName": {"Asha"},
		"lastName":  {"Rao"},
		"role":      {"VENUE_OWNER"},
	}

	s.Run("success: redirects to login with a notice flag", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqdto.RegisterForm{
			Email: "new@example.com", Password: "secret", FirstName: "Asha", LastName: "Rao", Role: "VENUE_OWNER",
		}).Return(user.Account{ID: 9, Email: "new@example.com"}, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/register", form)

		th.AssertRedirect(s.T(), w, "/login?registered=1")
	})

	s.Run("error: conflict keeps the form without the password", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(user.Account{}, &backend.APIError{Message: "Email already registered", Status: http.StatusConflict}).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/register", form)

		th.AssertPage(s.T(), w, http.StatusConflict, "Email already registered (HTTP 409)", `value="new@example.com"`)
		th.AssertNoFragment(s.T(), w, `value="secret"`)
	})
}
