package user

type Role string

// Roles are ordered: each one can do everything the previous one can
const (
	RoleCustomer   Role = "customer"
	RoleOwner      Role = "owner"
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RoleCustomer:   1,
	RoleOwner:      2,
	RoleSuperAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank below everything.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	want, known := roleRank[min]
	return ok && known && have >= want
}

// IsStaff is true for platform administrators, who act across all tenants
func (r Role) IsStaff() bool {
	return r == RoleSuperAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
