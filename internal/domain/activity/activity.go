package activity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
)

// Type tags an activity entry with the business area it describes
type Type string

const (
	TypeOrder     Type = "order"
	TypeProduct   Type = "product"
	TypeInventory Type = "inventory"
	TypeShipment  Type = "shipment"
	TypeCarrier   Type = "carrier"
)

// Activity is an append-only audit record shown on the dashboard feed.
// Entries are never updated or deleted.
type Activity struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type        Type       `gorm:"type:varchar(20);not null;index"`
	Description string     `gorm:"type:text;not null"`
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName returns the table name for GORM
func (Activity) TableName() string {
	return "activities"
}

// New creates an activity entry
func New(entryType Type, description string, referenceID *uuid.UUID) (*Activity, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Activity description cannot be empty")
	}

	return &Activity{
		ID:          uuid.New(),
		Type:        entryType,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}, nil
}
