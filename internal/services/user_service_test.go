package services_test

import (
	"testing"
	"time"

	"playnite/internal/models"
	"playnite/internal/repositories"
	"playnite/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Profile_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, notFoundErr("user")).Once()

	user, err := service.Profile("missing")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	stored := &models.User{
		ID:        "user-1",
		Email:     "u@example.com",
		Username:  "OldName",
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	mockRepo.On("GetByID", "user-1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	before := time.Now().UTC()
	patch := map[string]interface{}{
		"username":  "NewName",
		"favorites": []interface{}{"vid-1", "vid-2"},
		"bogus":     42, // unknown keys are dropped
	}
	user, err := service.UpdateProfile("user-1", patch)
	assert.NoError(t, err)
	assert.Equal(t, "NewName", user.Username)
	assert.Equal(t, []string{"vid-1", "vid-2"}, user.Favorites)
	// updated_at is always stamped, even for an empty patch.
	assert.False(t, user.UpdatedAt.Before(before))
	// Untouched fields survive the merge.
	assert.Equal(t, "u@example.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ListAll(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	expected := []models.User{{ID: "a"}, {ID: "b"}}
	mockRepo.On("GetAll", 1000).Return(expected, nil).Once()

	users, err := service.ListAll()
	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockRepo.AssertExpectations(t)
}
