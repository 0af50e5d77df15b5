package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User mirrors the account record from the external identity service.
// No credentials live here; tokens are issued elsewhere.
type User struct {
	Base
	Name     string   `db:"name"`
	Email    string   `db:"email"`
	Phone    *string  `db:"phone"`
	Role     UserRole `db:"role"`
	IsActive bool     `db:"is_active"`
}
