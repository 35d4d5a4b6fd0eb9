package activity

import (
	"time"

	"github.com/stockroom/backend/internal/domain/activity"
)

// ActivityResponse is one row of the dashboard activity feed
type ActivityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToActivityResponse converts a domain activity to its API view
func ToActivityResponse(entry *activity.Activity) ActivityResponse {
	response := ActivityResponse{
		ID:          entry.ID.String(),
		Type:        string(entry.Type),
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
	if entry.ReferenceID != nil {
		response.ReferenceID = entry.ReferenceID.String()
	}
	return response
}
