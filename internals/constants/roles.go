package constants

import "fmt"

// Role dari Laravel (user.role). Dibandingkan lowercase.
const (
	RoleAdmin     = "admin"
	RoleMahasiswa = "mahasiswa"
	RoleDosen     = "dosen"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleMahasiswa,
		RoleDosen,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
