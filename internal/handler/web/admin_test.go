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
	"venue-booking-web/tests/common/builder"
	th "venue-booking-web/tests/common/httptest"
	commandsmock "venue-booking-web/tests/mock/commands"
	queriesmock "venue-booking-web/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockAdminQueries
	mockCommands *commandsmock.MockAdminCommands
	cookie       *http.Cookie
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = newRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.cookie = sessionCookie(s.T(), 1, user.RoleAdmin)

	h := web.NewAdminHandler(s.mockQueries, s.mockCommands)
	s.router.GET("/admin", h.Dashboard)
	s.router.POST("/admin/users", h.CreateUser)
	s.router.POST("/admin/users/:id", h.UpdateUser)
	s.router.POST("/admin/users/:id/delete", h.DeleteUser)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

var meeraUser = builder.NewUserBuilder().
	WithID(5).
	WithEmail("meera@example.com").
	WithName("Meera", "Iyer").
	WithPhone("98450")

var meera = meeraUser.BuildAccount()

func (s *AdminHandlerTestSuite) TestDashboard() {
	s.Run("success: filter reaches the backend", func() {
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), testToken, backend.UserFilter{SearchTerm: "meera", Role: user.RoleCustomer}).
			Return([]user.Account{meera}, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodGet, "/admin?searchTerm=meera&role=CUSTOMER", nil, s.cookie)

		th.AssertPage(s.T(), w, http.StatusOK, "Meera Iyer", "meera@example.com", `value="meera"`)
	})

	s.Run("success: unknown role filter is dropped", func() {
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), testToken, backend.UserFilter{}).Return(nil, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodGet, "/admin?role=ROOT", nil, s.cookie)

		th.AssertPage(s.T(), w, http.StatusOK, "No users match.")
	})

	s.Run("success: edit loads the user", func() {
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), testToken, gomock.Any()).Return([]user.Account{meera}, nil).Times(1)
		s.mockQueries.EXPECT().GetUser(gomock.Any(), testToken, int64(5)).Return(meera, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodGet, "/admin?edit=5", nil, s.cookie)

		th.AssertPage(s.T(), w, http.StatusOK, "Edit user", `action="/admin/users/5"`)
	})
}

func (s *AdminHandlerTestSuite) TestCreateUser() {
	form := url.Values{
		"email":     {"new@example.com"},
		"password":  {"s3cret-pass"},
		"firstName": {"Ravi"},
		"lastName":  {"K"},
		"role":      {"VENUE_OWNER"},
	}

	s.Run("success: redirects to the dashboard", func() {
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), testToken, reqdto.UserForm{
			Email: "new@example.com", Password: "s3cret-pass", FirstName: "Ravi", LastName: "K", Role: user.RoleVenueOwner,
		}).Return(user.Account{ID: 6}, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users", form, s.cookie)

		th.AssertRedirect(s.T(), w, "/admin")
	})

	s.Run("error: rejection re-renders without the password", func() {
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), testToken, gomock.Any()).
			Return(user.Account{}, &backend.APIError{Message: "Email already registered", Status: http.StatusConflict}).Times(1)
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), testToken, gomock.Any()).Return(nil, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users", form, s.cookie)

		th.AssertPage(s.T(), w, http.StatusConflict, "Email already registered (HTTP 409)", "New user", `value="new@example.com"`)
		th.AssertNoFragment(s.T(), w, "s3cret-pass")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateAndDeleteUser() {
	s.Run("update redirects", func() {
		s.mockCommands.EXPECT().UpdateUser(gomock.Any(), testToken, int64(5), gomock.Any()).Return(meera, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/5", meeraUser.BuildForm(""), s.cookie)

		th.AssertRedirect(s.T(), w, "/admin")
	})

	s.Run("delete failure shows a banner", func() {
		s.mockCommands.EXPECT().DeleteUser(gomock.Any(), testToken, int64(5)).
			Return(&backend.APIError{Message: "User has bookings", Status: http.StatusConflict}).Times(1)
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), testToken, gomock.Any()).Return([]user.Account{meera}, nil).Times(1)

		w := th.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/5/delete", url.Values{}, s.cookie)

		th.AssertPage(s.T(), w, http.StatusConflict, "User has bookings (HTTP 409)", "Meera Iyer")
	})
}
