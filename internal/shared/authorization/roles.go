// Package authorization holds the role model and the typed actor passed into
// every use case. Actor identity always arrives as an explicit argument,
// never from ambient state.
package authorization

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleMaintenance UserRole = "maintenance"
	RoleTenant      UserRole = "tenant"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsMaintenance() bool {
	return r == RoleMaintenance
}

func (r UserRole) IsTenant() bool {
	return r == RoleTenant
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMaintenance || r == RoleTenant
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleTenant
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) IsMaintenance() bool {
	return a.Role.IsMaintenance()
}

func (a Actor) IsTenant() bool {
	return a.Role.IsTenant()
}
