package services_test

import (
	"testing"

	"playnite/internal/models"
	"playnite/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestStaticVerifier(t *testing.T) {
	verifier := services.NewStaticVerifier(services.MockUserIdentity())

	// Any present token resolves to the fixed identity.
	identity, err := verifier.Resolve("any-opaque-token")
	assert.NoError(t, err)
	assert.Equal(t, "mock-user-id", identity.ID)
	assert.Equal(t, models.RoleUser, identity.Role)

	// An empty token is a missing credential.
	_, err = verifier.Resolve("")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestStaticVerifier_AdminTier(t *testing.T) {
	verifier := services.NewStaticVerifier(services.MockAdminIdentity())

	identity, err := verifier.Resolve("token")
	assert.NoError(t, err)
	assert.Equal(t, "mock-admin-id", identity.ID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestJWTVerifier_ResolvesLoginTokens(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)
	verifier := services.NewJWTVerifier(testJWTSecret)

	user := &models.User{
		ID:       "user-42",
		Email:    "jwt@example.com",
		Username: "jwtuser",
		Role:     models.RoleAdmin,
	}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	resp, err := authService.Login(models.UserLogin{Email: user.Email, Password: "x"})
	assert.NoError(t, err)

	identity, err := verifier.Resolve(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, user.Username, identity.Username)
	assert.Equal(t, user.Role, identity.Role)
}

func TestJWTVerifier_RejectsGarbage(t *testing.T) {
	verifier := services.NewJWTVerifier(testJWTSecret)

	_, err := verifier.Resolve("not.a.token")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}
