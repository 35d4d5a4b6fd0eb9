package activity

import (
	"context"

	"github.com/stockroom/backend/internal/domain/activity"
)

// maxFeedLimit caps the feed size a caller may request
const maxFeedLimit = 100

// Service serves the dashboard activity feed
type Service struct {
	activityRepo activity.Repository
}

// NewService creates a new activity Service
func NewService(activityRepo activity.Repository) *Service {
	return &Service{activityRepo: activityRepo}
}

// ListRecent returns the newest activity entries, most recent first
func (s *Service) ListRecent(ctx context.Context, limit int) ([]ActivityResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	entries, err := s.activityRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ActivityResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToActivityResponse(&entries[i]))
	}
	return responses, nil
}
