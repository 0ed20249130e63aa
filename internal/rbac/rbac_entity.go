package rbac

// RolePermission adalah satu baris grant pada tabel role_permissions.
// Role di sini adalah role akses aplikasi (owner/manager/staff),
// bukan role pekerjaan karyawan di tabel roles.
type RolePermission struct {
	Role     string `gorm:"column:role"`
	Resource string `gorm:"column:resource"`
	Action   string `gorm:"column:action"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
