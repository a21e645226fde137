package services

import (
	"errors"
	"fmt"
	"time"

	"playnite/internal/models"
	"playnite/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login.
//
// Login only checks that the email is registered; the password is hashed and
// stored at registration but deliberately not verified here. Credential
// verification belongs to the CredentialVerifier, which is a stub until a
// real identity provider is plugged in.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register creates a new user with the "user" role and default fields.
// A duplicate email fails with ErrEmailExists and leaves the existing record
// untouched.
func (s *AuthService) Register(input models.UserCreate) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s': %w", input.Email, ErrEmailExists)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Username:     input.Username,
		Password:     string(hashedPassword),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		IsActive:     true,
		Preferences:  map[string]interface{}{},
		WatchHistory: []string{},
		Favorites:    []string{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login resolves the email to a user and issues a bearer access token
// carrying the user's id and role. An unknown email fails with
// ErrUnauthorized.
func (s *AuthService) Login(input models.UserLogin) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
