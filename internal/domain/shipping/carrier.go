package shipping

import (
	"strings"
	"time"

	"github.com/stockroom/backend/internal/domain/shared"
)

// Carrier is a transportation company that fulfills shipments
type Carrier struct {
	shared.BaseAggregateRoot
	Name         string `gorm:"type:varchar(200);not null"`
	ContactEmail string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Carrier) TableName() string {
	return "carriers"
}

// NewCarrier creates a new carrier
func NewCarrier(name, contactEmail, contactPhone string) (*Carrier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Carrier name cannot be empty")
	}

	carrier := &Carrier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactEmail:      contactEmail,
		ContactPhone:      contactPhone,
		Active:            true,
	}

	carrier.AddDomainEvent(NewCarrierCreatedEvent(carrier))

	return carrier, nil
}

// Update updates the carrier's contact information
func (c *Carrier) Update(name, contactEmail, contactPhone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Carrier name cannot be empty")
	}

	c.Name = name
	c.ContactEmail = contactEmail
	c.ContactPhone = contactPhone
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate soft-disables the carrier for new shipments
func (c *Carrier) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate re-enables the carrier
func (c *Carrier) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
