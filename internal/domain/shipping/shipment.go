package shipping

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
)

// ShipmentStatus represents the lifecycle state of a shipment
type ShipmentStatus string

const (
	ShipmentStatusScheduled ShipmentStatus = "scheduled"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusCanceled  ShipmentStatus = "canceled"
)

// IsValid reports whether the status is one of the known values
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusScheduled, ShipmentStatusInTransit, ShipmentStatusDelivered, ShipmentStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusCanceled
}

// CanTransitionTo reports whether the status may move to the target
func (s ShipmentStatus) CanTransitionTo(target ShipmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == ShipmentStatusCanceled {
		return true
	}
	switch s {
	case ShipmentStatusScheduled:
		return target == ShipmentStatusInTransit
	case ShipmentStatusInTransit:
		return target == ShipmentStatusDelivered
	}
	return false
}

// ShipmentStatuses returns all known shipment statuses
func ShipmentStatuses() []ShipmentStatus {
	return []ShipmentStatus{ShipmentStatusScheduled, ShipmentStatusInTransit, ShipmentStatusDelivered, ShipmentStatusCanceled}
}

// Shipment links an order to a carrier and tracks its delivery progress
type Shipment struct {
	shared.BaseAggregateRoot
	ShipmentNumber string         `gorm:"type:varchar(30);not null;uniqueIndex"`
	OrderID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	CarrierID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status         ShipmentStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	TrackingCode   string         `gorm:"type:varchar(100)"`
	ScheduledDate  *time.Time
	DeliveredAt    *time.Time
	CancelReason   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

// NewShipment schedules a shipment for an order
func NewShipment(shipmentNumber string, orderID, carrierID uuid.UUID, trackingCode string, scheduledDate *time.Time) (*Shipment, error) {
	if strings.TrimSpace(shipmentNumber) == "" {
		return nil, shared.NewDomainError("INVALID_SHIPMENT_NUMBER", "Shipment number cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Shipment requires an order")
	}
	if carrierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CARRIER", "Shipment requires a carrier")
	}

	shipment := &Shipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShipmentNumber:    shipmentNumber,
		OrderID:           orderID,
		CarrierID:         carrierID,
		Status:            ShipmentStatusScheduled,
		TrackingCode:      trackingCode,
		ScheduledDate:     scheduledDate,
	}

	shipment.AddDomainEvent(NewShipmentScheduledEvent(shipment))

	return shipment, nil
}

// UpdateStatus moves the shipment to a new status, enforcing the
// transition table. Delivery stamps DeliveredAt.
func (s *Shipment) UpdateStatus(target ShipmentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown shipment status %q", target))
	}
	if target == s.Status {
		return nil
	}
	if !s.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot transition shipment from %s to %s", s.Status, target))
	}

	previous := s.Status
	s.Status = target
	if target == ShipmentStatusDelivered {
		now := time.Now()
		s.DeliveredAt = &now
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewShipmentStatusChangedEvent(s, previous))

	return nil
}

// Cancel cancels the shipment with a reason
func (s *Shipment) Cancel(reason string) error {
	if s.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot cancel shipment in status %s", s.Status))
	}

	previous := s.Status
	s.Status = ShipmentStatusCanceled
	s.CancelReason = reason
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewShipmentStatusChangedEvent(s, previous))

	return nil
}
