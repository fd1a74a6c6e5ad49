// Package authorization defines the account roles checked by the HTTP layer.
package authorization

type UserRole string

const (
	RoleMember     UserRole = "member"
	RoleSuperAdmin UserRole = "superadmin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleMember || r == RoleSuperAdmin
}

// ParseUserRole falls back to the least privileged role for unknown input.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleMember
}
