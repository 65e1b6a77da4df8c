package authorization

type UserRole string

const (
	// RoleAdmin manages the catalog: plan types, plans, seat limits, reports.
	RoleAdmin UserRole = "admin"
	// RoleBilling manages subscriptions, overrides and cancellations.
	RoleBilling UserRole = "billing"
	// RoleService is the peer identity system driving seat operations.
	RoleService UserRole = "service"
)

var AllRoles = []UserRole{RoleAdmin, RoleBilling, RoleService}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBilling, RoleService:
		return true
	}
	return false
}

// ParseUserRole returns the role named s and whether it is known.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
