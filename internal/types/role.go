package types

// UserRole is the portal role of an authenticated actor. The lifecycle core
// trusts the identity provider for the role but performs its own
// authorization checks on top of it.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleJanitor  UserRole = "janitor"
	UserRoleCustomer UserRole = "customer"
)

// IsStaff reports whether the role belongs to the managing organization
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleManager || r == UserRoleJanitor
}
