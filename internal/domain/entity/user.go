package entity

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleMagazijn = "magazijn"
)

// User an API account.
type User struct {
	ID           string // uuid
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | magazijn
	Status       string // active | pending
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
