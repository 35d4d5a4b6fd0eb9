package activity

import "context"

// Repository defines the interface for activity persistence.
// The log is append-only; there are no update or delete operations.
type Repository interface {
	// Append stores a new activity entry
	Append(ctx context.Context, entry *Activity) error

	// FindRecent returns the newest entries, most recent first
	FindRecent(ctx context.Context, limit int) ([]Activity, error)
}
