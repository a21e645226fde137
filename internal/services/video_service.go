package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"playnite/internal/models"
	"playnite/internal/repositories"

	"github.com/google/uuid"
)

// defaultListLimit is the page size when the caller does not supply one.
const defaultListLimit = 20

// categories is the fixed, ordered genre list served by GET /categories.
var categories = []string{
	"Action", "Comedy", "Drama", "Horror", "Romance",
	"Thriller", "Sci-Fi", "Documentary", "Animation", "Adventure",
}

// EventPublisher publishes domain events. A nil publisher disables
// publication without disabling the service.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// VideoService handles the video catalog: listing, playback reads, likes,
// and admin content management.
type VideoService struct {
	videoRepo repositories.VideoRepository
	events    EventPublisher
}

// NewVideoService creates a new VideoService.
func NewVideoService(videoRepo repositories.VideoRepository, events EventPublisher) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		events:    events,
	}
}

// List returns active videos, optionally narrowed by category and search
// term, paginated by skip/limit.
func (s *VideoService) List(category, search string, skip, limit int) ([]models.Video, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.videoRepo.List(repositories.VideoListQuery{
		Category: category,
		Search:   search,
		Skip:     skip,
		Limit:    limit,
	})
}

// Get returns an active video by ID and counts the read as a view. The
// returned record reflects the incremented counter.
func (s *VideoService) Get(id string) (*models.Video, error) {
	video, err := s.videoRepo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.videoRepo.IncrementViews(id); err != nil {
		return nil, fmt.Errorf("failed to count view for video %s: %w", id, err)
	}
	video.Views++
	return video, nil
}

// Like unconditionally increments the like counter. There is no per-user
// deduplication: N calls add N likes.
func (s *VideoService) Like(id string) error {
	if _, err := s.videoRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.videoRepo.IncrementLikes(id); err != nil {
		return err
	}
	s.publish("video.liked", map[string]interface{}{"video_id": id})
	return nil
}

// Create builds a video from an admin upload request, deriving the embed URL
// from the Google Drive share link.
func (s *VideoService) Create(input models.VideoCreate, uploadedBy string) (*models.Video, error) {
	now := time.Now().UTC()
	video := &models.Video{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		GoogleDriveURL: input.GoogleDriveURL,
		EmbedURL:       DeriveEmbedURL(input.GoogleDriveURL),
		Category:       input.Category,
		Tags:           input.Tags,
		Duration:       input.Duration,
		CreatedAt:      now,
		UpdatedAt:      now,
		IsActive:       true,
		UploadedBy:     uploadedBy,
	}
	if video.Tags == nil {
		video.Tags = []string{}
	}
	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}
	s.publish("video.created", map[string]interface{}{
		"video_id": video.ID,
		"title":    video.Title,
		"category": video.Category,
	})
	return video, nil
}

// Categories returns the fixed genre list.
func (s *VideoService) Categories() []string {
	return categories
}

// Seed inserts two fixed sample videos owned by the calling admin. Repeated
// calls duplicate the samples; a failed insert aborts without rolling back
// earlier ones.
func (s *VideoService) Seed(adminID string) error {
	now := time.Now().UTC()
	samples := []models.Video{
		{
			ID:             uuid.New().String(),
			Title:          "Sample Video 1",
			Description:    "This is a sample video for testing",
			GoogleDriveURL: "https://drive.google.com/file/d/1example/view",
			EmbedURL:       "https://drive.google.com/file/d/1example/preview",
			Category:       "Action",
			Tags:           []string{"sample", "test", "action"},
			Views:          150,
			Likes:          25,
			CreatedAt:      now,
			UpdatedAt:      now,
			IsActive:       true,
			UploadedBy:     adminID,
		},
		{
			ID:             uuid.New().String(),
			Title:          "Sample Video 2",
			Description:    "Another sample video",
			GoogleDriveURL: "https://drive.google.com/file/d/2example/view",
			EmbedURL:       "https://drive.google.com/file/d/2example/preview",
			Category:       "Comedy",
			Tags:           []string{"sample", "comedy", "funny"},
			Views:          200,
			Likes:          40,
			CreatedAt:      now,
			UpdatedAt:      now,
			IsActive:       true,
			UploadedBy:     adminID,
		},
	}
	for i := range samples {
		if err := s.videoRepo.Create(&samples[i]); err != nil {
			return fmt.Errorf("failed to seed video %q: %w", samples[i].Title, err)
		}
	}
	return nil
}

func (s *VideoService) publish(routingKey string, event map[string]interface{}) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.events.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// DeriveEmbedURL rewrites a Google Drive share link into a playback-ready
// preview link. The file identifier sits between the "/d/" segment and the
// next path separator. Anything that does not look like a Drive share link
// passes through unchanged.
func DeriveEmbedURL(driveURL string) string {
	if !strings.Contains(driveURL, "drive.google.com") || !strings.Contains(driveURL, "/d/") {
		return driveURL
	}
	rest := strings.SplitN(driveURL, "/d/", 2)[1]
	fileID := strings.SplitN(rest, "/", 2)[0]
	if fileID == "" {
		return driveURL
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID)
}
