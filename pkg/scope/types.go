package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the identity carried by an access token.
type Payload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type ctxKey struct{}
