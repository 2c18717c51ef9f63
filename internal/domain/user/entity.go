package user

import (
	"strings"

	"venue-booking-web/internal/pkg/localtime"
)

// Identity is who the backend says the logged-in user is.
// It mirrors the login response, token excluded.
type Identity struct {
	ID        int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

func (i Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// Account is a user record as managed by administrators.
type Account struct {
	ID          int64              `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Role        Role               `json:"role"`
	PhoneNumber string             `json:"phoneNumber"`
	Active      bool               `json:"active"`
	CreatedAt   localtime.DateTime `json:"createdAt"`
	UpdatedAt   localtime.DateTime `json:"updatedAt"`
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r LoginResponse) Identity() Identity {
	return Identity{
		ID:        r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
	}
}
