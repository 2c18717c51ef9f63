package request

import (
	"strings"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/infra/backend"
)

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	From     string `form:"from"`
}

func (r LoginForm) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RedirectTarget returns From when it is a local absolute path, otherwise fallback.
func (r LoginForm) RedirectTarget(fallback string) string {
	if strings.HasPrefix(r.From, "/") && !strings.HasPrefix(r.From, "//") && !strings.HasPrefix(r.From, "/\\") {
		return r.From
	}
	return fallback
}

type RegisterForm struct {
	Email       string `form:"email" binding:"required"`
	Password    string `form:"password" binding:"required"`
	FirstName   string `form:"firstName" binding:"required"`
	LastName    string `form:"lastName" binding:"required"`
	PhoneNumber string `form:"phoneNumber"`
	Role        string `form:"role"`
}

// ToBackend defaults the role to CUSTOMER.
func (r RegisterForm) ToBackend() (backend.UserRequest, error) {
	role := user.RoleCustomer
	if r.Role != "" {
		parsed, err := user.NewRole(r.Role)
		if err != nil {
			return backend.UserRequest{}, err
		}
		role = parsed
	}
	return backend.UserRequest{
		Email:       strings.TrimSpace(r.Email),
		Password:    r.Password,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Role:        role,
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
	}, nil
}
