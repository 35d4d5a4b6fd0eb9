package shipping

import (
	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeCarrier  = "Carrier"
	AggregateTypeShipment = "Shipment"
)

// Event type constants
const (
	EventTypeCarrierCreated        = "CarrierCreated"
	EventTypeShipmentScheduled     = "ShipmentScheduled"
	EventTypeShipmentStatusChanged = "ShipmentStatusChanged"
)

// CarrierCreatedEvent is published when a new carrier is registered
type CarrierCreatedEvent struct {
	shared.BaseDomainEvent
	CarrierID uuid.UUID `json:"carrier_id"`
	Name      string    `json:"name"`
}

// NewCarrierCreatedEvent creates a new CarrierCreatedEvent
func NewCarrierCreatedEvent(carrier *Carrier) *CarrierCreatedEvent {
	return &CarrierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCarrierCreated, AggregateTypeCarrier, carrier.ID),
		CarrierID:       carrier.ID,
		Name:            carrier.Name,
	}
}

// ShipmentScheduledEvent is published when a shipment is created
type ShipmentScheduledEvent struct {
	shared.BaseDomainEvent
	ShipmentID     uuid.UUID `json:"shipment_id"`
	ShipmentNumber string    `json:"shipment_number"`
	OrderID        uuid.UUID `json:"order_id"`
	CarrierID      uuid.UUID `json:"carrier_id"`
}

// NewShipmentScheduledEvent creates a new ShipmentScheduledEvent
func NewShipmentScheduledEvent(shipment *Shipment) *ShipmentScheduledEvent {
	return &ShipmentScheduledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShipmentScheduled, AggregateTypeShipment, shipment.ID),
		ShipmentID:      shipment.ID,
		ShipmentNumber:  shipment.ShipmentNumber,
		OrderID:         shipment.OrderID,
		CarrierID:       shipment.CarrierID,
	}
}

// ShipmentStatusChangedEvent is published when a shipment moves to a new status
type ShipmentStatusChangedEvent struct {
	shared.BaseDomainEvent
	ShipmentID     uuid.UUID      `json:"shipment_id"`
	ShipmentNumber string         `json:"shipment_number"`
	OrderID        uuid.UUID      `json:"order_id"`
	OldStatus      ShipmentStatus `json:"old_status"`
	NewStatus      ShipmentStatus `json:"new_status"`
	CancelReason   string         `json:"cancel_reason,omitempty"`
}

// NewShipmentStatusChangedEvent creates a new ShipmentStatusChangedEvent
func NewShipmentStatusChangedEvent(shipment *Shipment, previous ShipmentStatus) *ShipmentStatusChangedEvent {
	return &ShipmentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShipmentStatusChanged, AggregateTypeShipment, shipment.ID),
		ShipmentID:      shipment.ID,
		ShipmentNumber:  shipment.ShipmentNumber,
		OrderID:         shipment.OrderID,
		OldStatus:       previous,
		NewStatus:       shipment.Status,
		CancelReason:    shipment.CancelReason,
	}
}
