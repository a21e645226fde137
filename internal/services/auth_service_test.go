package services_test

import (
	"fmt"
	"testing"

	"playnite/internal/models"
	"playnite/internal/repositories"
	"playnite/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	input := models.UserCreate{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password123",
	}

	var created *models.User
	mockRepo.On("GetByEmail", input.Email).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.User)
		}).
		Return(nil).Once()

	user, err := authService.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, created, user)

	// Defaults set at construction.
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, input.Username, user.Username)
	assert.NotNil(t, user.Preferences)
	assert.NotNil(t, user.WatchHistory)
	assert.NotNil(t, user.Favorites)
	assert.False(t, user.CreatedAt.IsZero())

	// The password is stored as a bcrypt hash, never plaintext.
	assert.NotEqual(t, input.Password, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	input := models.UserCreate{
		Email:    "taken@example.com",
		Username: "someone",
		Password: "password123",
	}

	mockRepo.On("GetByEmail", input.Email).
		Return(&models.User{ID: "existing-id", Email: input.Email}, nil).Once()

	user, err := authService.Register(input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrEmailExists)
	// The existing record is never touched.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Username: "testuser",
		Role:     models.RoleUser,
	}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	resp, err := authService.Login(models.UserLogin{Email: user.Email, Password: "whatever"})
	assert.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user, resp.User)
	assert.NotEmpty(t, resp.AccessToken)

	// The token carries the user's id and role.
	parsed, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Role, claims["role"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByEmail", "missing@example.com").
		Return(nil, notFoundErr("user")).Once()

	resp, err := authService.Login(models.UserLogin{Email: "missing@example.com", Password: "x"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}
