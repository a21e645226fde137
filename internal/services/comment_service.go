package services

import (
	"fmt"
	"time"

	"playnite/internal/models"
	"playnite/internal/repositories"

	"github.com/google/uuid"
)

// maxCommentListing caps the per-video comment listing.
const maxCommentListing = 100

// CommentService handles video comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// ListForVideo returns up to 100 comments for a video, newest first.
func (s *CommentService) ListForVideo(videoID string) ([]models.Comment, error) {
	return s.commentRepo.ListByVideo(videoID, maxCommentListing)
}

// Create posts a comment on behalf of the caller, snapshotting the caller's
// username at post time.
func (s *CommentService) Create(videoID string, identity *models.Identity, text string) (*models.Comment, error) {
	comment := &models.Comment{
		ID:        uuid.New().String(),
		VideoID:   videoID,
		UserID:    identity.ID,
		Username:  identity.Username,
		Text:      text,
		Timestamp: time.Now().UTC(),
		Replies:   []map[string]interface{}{},
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}
