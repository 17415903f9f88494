package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenPayload captures the data available when minting a JWT.
type SessionTokenPayload struct {
	UserID   uuid.UUID
	Username string
	Admin    bool
}

// SessionTokenClaims represents the typed JWT issued on login/register.
type SessionTokenClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Admin    bool      `json:"admin"`
	jwt.RegisteredClaims
}
