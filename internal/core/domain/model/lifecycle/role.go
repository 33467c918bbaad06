package lifecycle

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Role is the authorization role of the acting user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
	// RoleSuperAdmin belongs to the surrounding platform and is unrestricted.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole maps a stored role name to a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleOperator, RoleSuperAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
	}
}

// Capabilities is what the policy resolver actually checks. Roles are resolved
// into capabilities once, at the authorization boundary.
type Capabilities struct {
	CanActAsAdmin bool
}

// Capabilities resolves the role hierarchy: both ADMIN and SUPER_ADMIN may act
// as administrator, OPERATOR and unknown roles may not.
func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return Capabilities{CanActAsAdmin: true}
	default:
		return Capabilities{}
	}
}
