package request

import (
	"strings"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type UserFilterForm struct {
	SearchTerm string `form:"searchTerm"`
	Role       string `form:"role"`
}

// ToBackend drops an unknown role filter instead of failing the listing.
func (r UserFilterForm) ToBackend() backend.UserFilter {
	f := backend.UserFilter{SearchTerm: strings.TrimSpace(r.SearchTerm)}
	if role, err := user.NewRole(r.Role); err == nil {
		f.Role = role
	}
	return f
}

type UserForm struct {
	Email       string    `form:"email" binding:"required"`
	Password    string    `form:"password"`
	FirstName   string    `form:"firstName" binding:"required"`
	LastName    string    `form:"lastName" binding:"required"`
	PhoneNumber string    `form:"phoneNumber"`
	Role        user.Role `form:"role" binding:"required"`
}

// NewUserForm prefills the edit form; the password is never echoed back.
func NewUserForm(a user.Account) (UserForm, error) {
	var f UserForm
	if err := copier.Copy(&f, &a); err != nil {
		return UserForm{}, errs.Wrap(err, "failed to prefill user form")
	}
	f.Password = ""
	return f, nil
}

func (r UserForm) ToBackend() (backend.UserRequest, error) {
	if !r.Role.IsValid() {
		return backend.UserRequest{}, user.ErrInvalidRole
	}
	var req backend.UserRequest
	if err := copier.Copy(&req, &r); err != nil {
		return backend.UserRequest{}, errs.Wrap(err, "failed to map user form")
	}
	req.Email = strings.TrimSpace(req.Email)
	return req, nil
}
