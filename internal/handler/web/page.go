package web

import (
	"html/template"
	"net/http"
	"strconv"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler/httperr"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// Nav is what the header needs to know about the caller.
type Nav struct {
	Authenticated bool
	Name          string
	Role          string
	Bookings      bool
	Owner         bool
	Admin         bool
}

// Page is the data every template receives. Data is page specific.
type Page struct {
	Title  string
	Nav    Nav
	CSRF   template.HTML
	Error  string
	Notice string
	Data   any
}

func newPage(c *gin.Context, title string, data any) Page {
	sess := middleware.GetSession(c)

	nav := Nav{Role: "PUBLIC"}
	if identity, ok := sess.Identity(); ok && sess.Authenticated() {
		nav = Nav{
			Authenticated: true,
			Name:          identity.FullName(),
			Role:          string(identity.Role),
			Bookings:      sess.HasRole(user.RoleCustomer, user.RoleAdmin),
			Owner:         sess.HasRole(user.RoleVenueOwner, user.RoleAdmin),
			Admin:         sess.HasRole(user.RoleAdmin),
		}
	}

	return Page{
		Title: title,
		Nav:   nav,
		CSRF:  csrf.TemplateField(c.Request),
		Data:  data,
	}
}

// render shows the page with err, if any, as its single banner.
func render(c *gin.Context, name, title string, data any, err error) {
	p := newPage(c, title, data)
	p.Error = ErrorMessage(err)
	c.HTML(statusFor(err), name, p)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// bindForm binds the posted form. Any binding failure reads as a missing required field.
func bindForm(c *gin.Context, form any) error {
	if err := c.ShouldBind(form); err != nil {
		return errs.Mark(err, errs.ErrRequiredField)
	}
	return nil
}

// pathID parses a numeric path parameter. Anything else is a 404.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusNotFound,
			errs.Mark(errs.Newf("bad %s %q", name, c.Param(name)), errs.ErrInvalidID),
			"Page not found", nil)
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric query parameter.
func queryID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// caller returns the session token and identity of a guarded request.
func caller(c *gin.Context) (string, user.Identity) {
	sess := middleware.GetSession(c)
	identity, _ := sess.Identity()
	return sess.Token(), identity
}
