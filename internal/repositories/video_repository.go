package repositories

import "playnite/internal/models"

// VideoListQuery narrows a video listing. Category is an exact match; Search
// matches title or description as a case-insensitive substring, or tags by
// membership. Zero-value fields are ignored.
type VideoListQuery struct {
	Category string
	Search   string
	Skip     int
	Limit    int
}

// VideoRepository defines the interface for video data access.
// Counter updates go through the store's atomic increment, never through a
// read-modify-write cycle.
type VideoRepository interface {
	Create(video *models.Video) error
	GetByID(id string) (*models.Video, error)
	GetActiveByID(id string) (*models.Video, error)
	List(query VideoListQuery) ([]models.Video, error)
	IncrementViews(id string) error
	IncrementLikes(id string) error
	CountActive() (int64, error)
	SumViews() (int64, error)
}
