package entity

import "slices"

// Role represents the type of role a caller can have in the system.
type Role string

const (
	// RoleUser indicates a regular tourist.
	RoleUser Role = "user"
	// RoleOperator indicates a control-room operator handling alerts.
	RoleOperator Role = "operator"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsElevated reports whether the role may act on resources it does not own.
func (r Role) IsElevated() bool {
	return r == RoleOperator || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// HasElevated reports whether any role is elevated.
func (rs Roles) HasElevated() bool {
	return slices.ContainsFunc(rs, Role.IsElevated)
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID      string
	Email       string
	DisplayName string
	Roles       Roles
	IsAnonymous bool
}

// IsElevated reports whether the actor holds an operator or admin role.
func (a Actor) IsElevated() bool {
	return a.Roles.HasElevated()
}

// CanModify reports whether the actor may update or delete the fence.
func (a Actor) CanModify(g *Geofence) bool {
	return g.IsOwnedBy(a.UserID) || a.IsElevated()
}
