package services

import (
	"fmt"

	"playnite/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// CredentialVerifier resolves an opaque bearer token to a caller identity.
// Swapping the implementation changes the authentication provider without
// touching any handler.
type CredentialVerifier interface {
	Resolve(token string) (*models.Identity, error)
}

// StaticVerifier accepts any non-empty token and resolves it to a fixed
// identity. It stands in for the real identity provider.
type StaticVerifier struct {
	identity models.Identity
}

// NewStaticVerifier creates a verifier that always yields the given identity.
func NewStaticVerifier(identity models.Identity) *StaticVerifier {
	return &StaticVerifier{identity: identity}
}

// Resolve returns the fixed identity for any present token.
func (v *StaticVerifier) Resolve(token string) (*models.Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	identity := v.identity
	return &identity, nil
}

// MockUserIdentity is the fixed user-tier identity used by StaticVerifier.
func MockUserIdentity() models.Identity {
	return models.Identity{
		ID:       "mock-user-id",
		Email:    "user@example.com",
		Username: "TestUser",
		Role:     models.RoleUser,
	}
}

// MockAdminIdentity is the fixed admin-tier identity used by StaticVerifier.
func MockAdminIdentity() models.Identity {
	return models.Identity{
		ID:       "mock-admin-id",
		Email:    "admin@example.com",
		Username: "Admin",
		Role:     models.RoleAdmin,
	}
}

// JWTVerifier resolves the HS256 access tokens issued at login.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with the given secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Resolve parses and validates the token and maps its claims to an identity.
func (v *JWTVerifier) Resolve(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}

	identity := &models.Identity{}
	if v, ok := claims["user_id"].(string); ok {
		identity.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["username"].(string); ok {
		identity.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		identity.Role = v
	}
	return identity, nil
}
