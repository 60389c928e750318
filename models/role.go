package models

import "strings"

// Role es el rol efectivo de un usuario
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cajero"
	RoleUser    Role = "usuario"
)

// CashierGroup es el grupo que otorga el rol de cajero
const CashierGroup = "Cajero"

// DeriveRole: staff -> admin; grupo Cajero -> cajero; resto -> usuario
func DeriveRole(isStaff bool, groups []string) Role {
	if isStaff {
		return RoleAdmin
	}
	for _, g := range groups {
		if strings.EqualFold(g, CashierGroup) {
			return RoleCashier
		}
	}
	return RoleUser
}

// ParseRole acepta el nombre del rol sin distinguir mayúsculas
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCashier:
		return RoleCashier, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// IsStaffSide indica si el rol puede gestionar reservas
func (r Role) IsStaffSide() bool {
	return r == RoleAdmin || r == RoleCashier
}

func (r Role) String() string {
	return string(r)
}
