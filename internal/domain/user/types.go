package user

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleVenueOwner Role = "VENUE_OWNER"
	RoleAdmin      Role = "ADMIN"
)

// Roles lists every role in display order.
var Roles = []Role{RoleCustomer, RoleVenueOwner, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVenueOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
