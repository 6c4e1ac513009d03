// Package account stores credentials and roles.
package account

import (
	"fmt"

	"github.com/breinnndel/storefront/internal/shop"
)

// Role determines which menu a session gets.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// ParseRole accepts the three known role names.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return r, nil
	default:
		return "", shop.Newf(shop.KindInvalidInput, "Unknown role %q.", s)
	}
}

// User is a credential record.
type User struct {
	Username string
	Password string
	Role     Role

	// Seq orders listings by registration.
	Seq int
}

func (u User) String() string {
	return fmt.Sprintf("Username: %s | Role: %s", u.Username, u.Role)
}

// Repository is the authentication state owned by the process.
type Repository interface {
	Authenticate(username, password string) (User, error)
	Add(user User) (User, error)
	Delete(username string) error
	List() ([]User, error)
	ListByRole(role Role) ([]User, error)
}
