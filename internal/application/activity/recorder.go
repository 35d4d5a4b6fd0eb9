package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/activity"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/shipping"
	"github.com/stockroom/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// Recorder subscribes to domain events and appends entries to the
// activity feed. Recording is best effort: a failed append is logged
// and never fails the originating operation.
type Recorder struct {
	activityRepo activity.Repository
	logger       *zap.Logger
}

// NewRecorder creates a new activity Recorder
func NewRecorder(activityRepo activity.Repository, logger *zap.Logger) *Recorder {
	return &Recorder{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// EventTypes returns the event types the recorder listens to
func (r *Recorder) EventTypes() []string {
	return []string{
		trade.EventTypeOrderPlaced,
		trade.EventTypeOrderStatusChanged,
		catalog.EventTypeProductCreated,
		catalog.EventTypeProductUpdated,
		catalog.EventTypeProductDeleted,
		catalog.EventTypeStockAdjusted,
		shipping.EventTypeCarrierCreated,
		shipping.EventTypeShipmentScheduled,
		shipping.EventTypeShipmentStatusChanged,
	}
}

// Handle appends a feed entry for the event
func (r *Recorder) Handle(ctx context.Context, event shared.DomainEvent) error {
	entryType, description, referenceID := r.describe(event)
	if description == "" {
		return nil
	}

	entry, err := activity.New(entryType, description, referenceID)
	if err != nil {
		r.logger.Warn("Failed to build activity entry",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
		return nil
	}

	if err := r.activityRepo.Append(ctx, entry); err != nil {
		r.logger.Warn("Failed to record activity",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
	return nil
}

// describe maps a domain event to a feed entry
func (r *Recorder) describe(event shared.DomainEvent) (activity.Type, string, *uuid.UUID) {
	switch e := event.(type) {
	case *trade.OrderPlacedEvent:
		return activity.TypeOrder,
			fmt.Sprintf("New order %s was registered", e.OrderNumber),
			ref(e.OrderID)

	case *trade.OrderStatusChangedEvent:
		return activity.TypeOrder,
			fmt.Sprintf("Order %s moved from %s to %s", e.OrderNumber, e.OldStatus, e.NewStatus),
			ref(e.OrderID)

	case *catalog.ProductCreatedEvent:
		return activity.TypeProduct,
			fmt.Sprintf("Product %s (%s) was added to the catalog", e.Name, e.Code),
			ref(e.ProductID)

	case *catalog.ProductUpdatedEvent:
		return activity.TypeProduct,
			fmt.Sprintf("Product %s was updated", e.Name),
			ref(e.ProductID)

	case *catalog.ProductDeletedEvent:
		return activity.TypeProduct,
			fmt.Sprintf("Product %s was removed from the catalog", e.Name),
			ref(e.ProductID)

	case *catalog.StockAdjustedEvent:
		return activity.TypeInventory,
			fmt.Sprintf("Stock of %s adjusted to %d units", e.Name, e.Quantity),
			ref(e.ProductID)

	case *shipping.CarrierCreatedEvent:
		return activity.TypeCarrier,
			fmt.Sprintf("Carrier %s was registered", e.Name),
			ref(e.CarrierID)

	case *shipping.ShipmentScheduledEvent:
		return activity.TypeShipment,
			fmt.Sprintf("Shipment %s was scheduled", e.ShipmentNumber),
			ref(e.ShipmentID)

	case *shipping.ShipmentStatusChangedEvent:
		if e.NewStatus == shipping.ShipmentStatusCanceled && e.CancelReason != "" {
			return activity.TypeShipment,
				fmt.Sprintf("Shipment %s was canceled: %s", e.ShipmentNumber, e.CancelReason),
				ref(e.ShipmentID)
		}
		return activity.TypeShipment,
			fmt.Sprintf("Shipment %s moved from %s to %s", e.ShipmentNumber, e.OldStatus, e.NewStatus),
			ref(e.ShipmentID)
	}

	return "", "", nil
}

func ref(id uuid.UUID) *uuid.UUID {
	return &id
}
