package constants

import "fmt"

// Role yang dikenal di JWT claim "role"
const (
	RoleMember = "member"
	RoleVendor = "vendor"
	RoleAdmin  = "admin" // platform administrator
)

// Template pesan error role
const (
	ErrOnlyMembersCanAccess = "❌ Hanya member yang boleh mengakses fitur %s."
	ErrOnlyVendorsCanAccess = "❌ Hanya vendor yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya platform admin yang boleh mengakses fitur %s."
)

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

func RoleErrorVendor(feature string) string {
	return fmt.Sprintf(ErrOnlyVendorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
