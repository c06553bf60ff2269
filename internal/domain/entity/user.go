package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User representa a quien ejecuta operaciones; su identidad queda en cada StockActivity.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash
	FirstName    string
	LastName     string
	Role         string // admin, manager, staff
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleStaff
}
