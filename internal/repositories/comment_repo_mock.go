package repositories

import (
	"sort"
	"sync"

	"playnite/internal/models"

	"github.com/google/uuid"
)

// MockCommentRepository is an in-memory implementation of CommentRepository.
type MockCommentRepository struct {
	mu       sync.RWMutex
	comments []models.Comment
}

// NewMockCommentRepository creates a new instance of MockCommentRepository.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

// Create adds a new comment.
func (r *MockCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	r.comments = append(r.comments, *comment)
	return nil
}

// ListByVideo returns up to limit comments for a video, newest first.
func (r *MockCommentRepository) ListByVideo(videoID string, limit int) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Comment
	for _, comment := range r.comments {
		if comment.VideoID == videoID {
			matched = append(matched, comment)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Count returns the number of comments.
func (r *MockCommentRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.comments)), nil
}
