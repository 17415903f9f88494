package models

import "github.com/google/uuid"

// User is a credential-store entry. Seeded accounts plus registrations.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	IsAdmin      bool      `json:"is_admin"`
	Phone        *string   `json:"phone,omitempty"`
}
