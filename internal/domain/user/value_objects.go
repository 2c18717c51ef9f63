package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
)

// Credentials only checks presence; the backend owns every other rule.
type Credentials struct {
	email    string
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Credentials{}, ErrEmailRequired
	}
	if password == "" {
		return Credentials{}, ErrPasswordRequired
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() string    { return c.email }
func (c Credentials) Password() string { return c.password }
