//go:build unit || e2e

package builder

import (
	"net/url"

	"venue-booking-web/internal/infra/backend"
)

type AuthBuilder struct {
	Email    string
	Password string
	From     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "someone@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) WithFrom(from string) *AuthBuilder {
	a.From = from
	return a
}

// BuildForm returns the login form as the browser posts it.
func (a *AuthBuilder) BuildForm() url.Values {
	form := url.Values{"email": {a.Email}, "password": {a.Password}}
	if a.From != "" {
		form.Set("from", a.From)
	}
	return form
}

func (a *AuthBuilder) BuildRequest() backend.LoginRequest {
	return backend.LoginRequest{Email: a.Email, Password: a.Password}
}
