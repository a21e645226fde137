package repositories

import (
	"errors"
	"fmt"
	"strings"

	"playnite/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVideoRepository is a GORM implementation of VideoRepository.
type GORMVideoRepository struct {
	db *gorm.DB
}

// NewGORMVideoRepository creates a new instance of GORMVideoRepository.
func NewGORMVideoRepository(db *gorm.DB) *GORMVideoRepository {
	return &GORMVideoRepository{db: db}
}

// Create inserts a new video, generating an ID when none is set.
func (r *GORMVideoRepository) Create(video *models.Video) error {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	if err := r.db.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a video by ID regardless of its active flag.
func (r *GORMVideoRepository) GetByID(id string) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get video by ID %s: %w", id, err)
	}
	return &video, nil
}

// GetActiveByID retrieves a video by ID, treating soft-deleted videos as
// missing.
func (r *GORMVideoRepository) GetActiveByID(id string) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get video by ID %s: %w", id, err)
	}
	return &video, nil
}

// List retrieves active videos matching the query, paginated by Skip/Limit.
// The search term matches the title or description case-insensitively, or the
// tag list by membership (quoted-element match on the serialized array).
func (r *GORMVideoRepository) List(query VideoListQuery) ([]models.Video, error) {
	tx := r.db.Where("is_active = ?", true)
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Search != "" {
		term := escapeLike(strings.ToLower(query.Search))
		pattern := "%" + term + "%"
		tagPattern := `%"` + term + `"%`
		tx = tx.Where(
			`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\'`,
			pattern, pattern, tagPattern,
		)
	}

	var videos []models.Video
	if err := tx.Offset(query.Skip).Limit(query.Limit).Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// escapeLike neutralizes SQL LIKE wildcards in a user-supplied search term so
// the term always matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// IncrementViews bumps the view counter by one with a store-side atomic
// update.
func (r *GORMVideoRepository) IncrementViews(id string) error {
	return r.increment(id, "views")
}

// IncrementLikes bumps the like counter by one with a store-side atomic
// update.
func (r *GORMVideoRepository) IncrementLikes(id string) error {
	return r.increment(id, "likes")
}

func (r *GORMVideoRepository) increment(id, column string) error {
	res := r.db.Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment %s for video %s: %w", column, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("video with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountActive returns the number of active videos.
func (r *GORMVideoRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Video{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return count, nil
}

// SumViews totals the view counters across every video, active or not.
func (r *GORMVideoRepository) SumViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Video{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum video views: %w", err)
	}
	return total, nil
}
