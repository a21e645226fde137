package services

import (
	"fmt"

	"playnite/internal/repositories"
)

// AnalyticsSummary is the admin dashboard rollup.
type AnalyticsSummary struct {
	TotalUsers    int64 `json:"total_users"`
	TotalVideos   int64 `json:"total_videos"`
	TotalViews    int64 `json:"total_views"`
	TotalComments int64 `json:"total_comments"`
}

// AnalyticsService aggregates catalog-wide counters for the admin panel.
type AnalyticsService struct {
	userRepo    repositories.UserRepository
	videoRepo   repositories.VideoRepository
	commentRepo repositories.CommentRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	userRepo repositories.UserRepository,
	videoRepo repositories.VideoRepository,
	commentRepo repositories.CommentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
	}
}

// Summary computes the dashboard totals. The video count covers active
// videos only, while the view sum spans every video including deactivated
// ones; that asymmetry is part of the API contract.
func (s *AnalyticsService) Summary() (*AnalyticsSummary, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalVideos, err := s.videoRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}
	totalViews, err := s.videoRepo.SumViews()
	if err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}
	totalComments, err := s.commentRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return &AnalyticsSummary{
		TotalUsers:    totalUsers,
		TotalVideos:   totalVideos,
		TotalViews:    totalViews,
		TotalComments: totalComments,
	}, nil
}
