package repositories

import "playnite/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByVideo(videoID string, limit int) ([]models.Comment, error)
	Count() (int64, error)
}
