package models

// UserRole selects which portal a request is acting in. The demo has no
// identity or authentication; the role is plain request state.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RolePartner  UserRole = "PARTNER"
	RoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RolePartner, RoleAdmin:
		return true
	}
	return false
}
