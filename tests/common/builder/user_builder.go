//go:build unit || e2e

package builder

import (
	"net/url"

	"venue-booking-web/internal/domain/user"
)

type UserBuilder struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	Role        user.Role
	PhoneNumber string
	Active      bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        7,
		Email:     "someone@example.com",
		FirstName: "Asha",
		LastName:  "Rao",
		Role:      user.RoleCustomer,
		Active:    true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildLoginResponse(token string) user.LoginResponse {
	return user.LoginResponse{
		Token:     token,
		Email:     u.Email,
		Role:      u.Role,
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (u *UserBuilder) BuildIdentity() user.Identity {
	return u.BuildLoginResponse("").Identity()
}

func (u *UserBuilder) BuildAccount() user.Account {
	return user.Account{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		Active:      u.Active,
	}
}

// BuildForm returns the admin user form; the password is only sent when set.
func (u *UserBuilder) BuildForm(password string) url.Values {
	form := url.Values{
		"email":     {u.Email},
		"firstName": {u.FirstName},
		"lastName":  {u.LastName},
		"role":      {string(u.Role)},
	}
	if u.PhoneNumber != "" {
		form.Set("phoneNumber", u.PhoneNumber)
	}
	if password != "" {
		form.Set("password", password)
	}
	return form
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName, u.LastName = first, last
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.PhoneNumber = phone
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.Active = false
	return u
}
