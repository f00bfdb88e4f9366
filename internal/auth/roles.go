package auth

import "strings"

const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// NormalizeRole maps arbitrary casing ("admin", "ADMIN") onto the canonical
// capitalized role names. The token and every downstream decision use the
// canonical form only.
func NormalizeRole(role string) string {
	if role == "" {
		return ""
	}
	lower := strings.ToLower(role)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}
