package services

import (
	"fmt"
	"time"

	"playnite/internal/models"
	"playnite/internal/repositories"
)

// maxUserListing caps the admin user listing.
const maxUserListing = 1000

// UserService handles profile reads and partial profile updates.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile retrieves the user record behind an identity.
func (s *UserService) Profile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile merges the caller-supplied fields into the stored user and
// stamps updated_at. No field-level validation beyond shape coercion.
func (s *UserService) UpdateProfile(userID string, patch map[string]interface{}) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.ApplyPatch(patch)
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ListAll returns up to 1000 users, unfiltered. Admin only.
func (s *UserService) ListAll() ([]models.User, error) {
	return s.userRepo.GetAll(maxUserListing)
}
