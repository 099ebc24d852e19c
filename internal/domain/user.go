package domain

import "time"

// User represents a platform account. The demo ships with a single
// seeded user that every request is attributed to.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCreate represents user creation data
type UserCreate struct {
	Username  string `json:"username" validate:"required,max=255"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Role      string `json:"role" validate:"omitempty,max=64"`
}

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
