// Package permission declares route-level access control by role.
package permission

// PermissionEnforcer decides whether a role may perform action on resource.
// Resources are route patterns and actions are HTTP methods.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	GetPermissionsForRole(role string) ([][]string, error)
	LoadPolicy() error
}
