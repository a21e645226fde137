package repositories

import (
	"fmt"

	"playnite/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{db: db}
}

// Create inserts a new comment, generating an ID when none is set.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListByVideo retrieves up to limit comments for a video, newest first.
func (r *GORMCommentRepository) ListByVideo(videoID string, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("video_id = ?", videoID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for video %s: %w", videoID, err)
	}
	for i := range comments {
		for j := range comments[i].Replies {
			comments[i].Replies[j] = models.DecodeTimestamps(comments[i].Replies[j])
		}
	}
	return comments, nil
}

// Count returns the total number of comments.
func (r *GORMCommentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
