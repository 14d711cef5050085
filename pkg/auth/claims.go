package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload is the input for minting an admin token.
type AccessTokenPayload struct {
	AdminID uuid.UUID
	Email   string
	JTI     string
}

// AccessTokenClaims is the typed claim set carried in admin JWTs.
type AccessTokenClaims struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
	jwt.RegisteredClaims
}
