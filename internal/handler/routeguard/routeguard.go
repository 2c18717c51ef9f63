// Package routeguard decides whether a page may render for the current session.
package routeguard

import (
	"net/http"
	"net/url"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/session"

	"github.com/gin-gonic/gin"
)

type Outcome int

const (
	Render Outcome = iota
	RedirectLogin
	RedirectDefault
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDefault:
		return "redirect_default"
	default:
		return "unknown"
	}
}

const (
	LoginPath   = "/login"
	DefaultPath = "/"
)

type Decision struct {
	Outcome  Outcome
	Location string
}

// LoginLocation is the login page that returns the user to from afterwards.
func LoginLocation(from string) string {
	return LoginPath + "?from=" + url.QueryEscape(from)
}

// Evaluate requires a token and an identity, and when required is non-empty,
// a role from it. Nothing is cached between calls.
func Evaluate(sess session.Reader, required []user.Role, path string) Decision {
	_, hasIdentity := sess.Identity()
	if sess.Token() == "" || !hasIdentity {
		return Decision{Outcome: RedirectLogin, Location: LoginLocation(path)}
	}
	if len(required) > 0 && !sess.HasRole(required...) {
		return Decision{Outcome: RedirectDefault, Location: DefaultPath}
	}
	return Decision{Outcome: Render}
}

// Require guards the following handlers. An empty role list admits any logged-in user.
func Require(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		d := Evaluate(middleware.GetSession(c), roles, path)
		if d.Outcome == Render {
			c.Next()
			return
		}
		c.Redirect(http.StatusSeeOther, d.Location)
		c.Abort()
	}
}
