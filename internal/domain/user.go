package domain

import "time"

// User represents a user entity in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio"`
	Image        string    `json:"image"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries a partial profile update. Nil fields are untouched.
type UserPatch struct {
	Username *string
	Email    *string
	Bio      *string
	Password *string
}
