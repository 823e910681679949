package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims is the payload of an API bearer token. Name claims are
// optional and only used when the user is provisioned on first sight.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	TokenType  string `json:"token_type"`
}

// Owner parses the user id the token was issued for.
func (c *CustomClaims) Owner() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// ProvisionedUser builds the user row mirrored from the claims.
func (c *CustomClaims) ProvisionedUser(id uuid.UUID) *User {
	return &User{ID: id, Email: c.Email, FirstName: c.GivenName, LastName: c.FamilyName}
}
