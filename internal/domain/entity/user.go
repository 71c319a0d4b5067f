package entity

import "time"

// Roles de usuario dentro de una organización.
const (
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User usuario autenticable, asociado a una organización.
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string
	Name           string
	Role           string
	Status         string // active | inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
