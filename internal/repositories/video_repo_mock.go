package repositories

import (
	"fmt"
	"strings"
	"sync"

	"playnite/internal/models"

	"github.com/google/uuid"
)

// MockVideoRepository is an in-memory implementation of VideoRepository.
// Listing returns videos in insertion order.
type MockVideoRepository struct {
	mu     sync.RWMutex
	videos map[string]models.Video
	order  []string
}

// NewMockVideoRepository creates a new instance of MockVideoRepository.
func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{
		videos: make(map[string]models.Video),
	}
}

// Create adds a new video.
func (r *MockVideoRepository) Create(video *models.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	r.videos[video.ID] = *video
	r.order = append(r.order, video.ID)
	return nil
}

// GetByID returns a video by ID regardless of its active flag.
func (r *MockVideoRepository) GetByID(id string) (*models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, ok := r.videos[id]
	if !ok {
		return nil, fmt.Errorf("video with ID %s: %w", id, ErrNotFound)
	}
	return &video, nil
}

// GetActiveByID returns a video by ID, treating inactive videos as missing.
func (r *MockVideoRepository) GetActiveByID(id string) (*models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, ok := r.videos[id]
	if !ok || !video.IsActive {
		return nil, fmt.Errorf("video with ID %s: %w", id, ErrNotFound)
	}
	return &video, nil
}

// List returns active videos matching the query.
func (r *MockVideoRepository) List(query VideoListQuery) ([]models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Video
	for _, id := range r.order {
		video := r.videos[id]
		if !video.IsActive {
			continue
		}
		if query.Category != "" && video.Category != query.Category {
			continue
		}
		if query.Search != "" && !matchesSearch(&video, query.Search) {
			continue
		}
		matched = append(matched, video)
	}

	if query.Skip >= len(matched) {
		return nil, nil
	}
	matched = matched[query.Skip:]
	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func matchesSearch(video *models.Video, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(video.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(video.Description), needle) {
		return true
	}
	for _, tag := range video.Tags {
		if strings.ToLower(tag) == needle {
			return true
		}
	}
	return false
}

// IncrementViews bumps the view counter by one.
func (r *MockVideoRepository) IncrementViews(id string) error {
	return r.increment(id, func(v *models.Video) { v.Views++ })
}

// IncrementLikes bumps the like counter by one.
func (r *MockVideoRepository) IncrementLikes(id string) error {
	return r.increment(id, func(v *models.Video) { v.Likes++ })
}

func (r *MockVideoRepository) increment(id string, bump func(*models.Video)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	video, ok := r.videos[id]
	if !ok {
		return fmt.Errorf("video with ID %s: %w", id, ErrNotFound)
	}
	bump(&video)
	r.videos[id] = video
	return nil
}

// CountActive returns the number of active videos.
func (r *MockVideoRepository) CountActive() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, video := range r.videos {
		if video.IsActive {
			count++
		}
	}
	return count, nil
}

// SumViews totals views across every video, active or not.
func (r *MockVideoRepository) SumViews() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, video := range r.videos {
		total += video.Views
	}
	return total, nil
}
