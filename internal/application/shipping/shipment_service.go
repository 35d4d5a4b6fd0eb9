package shipping

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/shipping"
	"github.com/stockroom/backend/internal/domain/trade"
)

// ShipmentService handles shipment business operations. Shipment status
// changes are synchronized to the owning order: a shipment in transit
// marks the order shipped, a delivered shipment marks it delivered.
type ShipmentService struct {
	shipmentRepo   shipping.ShipmentRepository
	carrierRepo    shipping.CarrierRepository
	orderRepo      trade.OrderRepository
	eventPublisher shared.EventPublisher

	// overridable for tests
	generateNumber func() string
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	shipmentRepo shipping.ShipmentRepository,
	carrierRepo shipping.CarrierRepository,
	orderRepo trade.OrderRepository,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		carrierRepo:  carrierRepo,
		orderRepo:    orderRepo,
		generateNumber: func() string {
			return fmt.Sprintf("EXP-%06d-%03d", time.Now().Unix()%1000000, rand.Intn(1000))
		},
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ShipmentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create schedules a shipment for an order. The order must exist and
// still be open; scheduling moves a pending order to processing.
func (s *ShipmentService) Create(ctx context.Context, req CreateShipmentRequest) (*ShipmentResponse, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid order id")
	}
	carrierID, err := uuid.Parse(req.CarrierID)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid carrier id")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == trade.OrderStatusCanceled || order.Status == trade.OrderStatusDelivered {
		return nil, shared.NewDomainError("INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot schedule a shipment for a %s order", order.Status))
	}

	carrier, err := s.carrierRepo.FindByID(ctx, carrierID)
	if err != nil {
		return nil, err
	}
	if !carrier.Active {
		return nil, shared.NewDomainError("VALIDATION_ERROR",
			fmt.Sprintf("Carrier %s is inactive", carrier.Name))
	}

	shipment, err := shipping.NewShipment(s.generateNumber(), orderID, carrierID, req.TrackingCode, req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	if order.Status == trade.OrderStatusPending {
		if err := order.UpdateStatus(trade.OrderStatusProcessing); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}
		s.publish(ctx, order.GetDomainEvents())
		order.ClearDomainEvents()
	}

	s.publish(ctx, shipment.GetDomainEvents())
	shipment.ClearDomainEvents()

	response := ToShipmentResponse(shipment, carrier.Name)
	return &response, nil
}

// GetByID retrieves a shipment by ID
func (s *ShipmentService) GetByID(ctx context.Context, id uuid.UUID) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment, s.carrierName(ctx, shipment.CarrierID))
	return &response, nil
}

// List retrieves shipments with filtering and pagination
func (s *ShipmentService) List(ctx context.Context, filter ShipmentListFilter) (shared.Paginated[ShipmentResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CarrierID != "" {
		domainFilter.Filters["carrier_id"] = filter.CarrierID
	}

	shipments, err := s.shipmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ShipmentResponse]{}, err
	}
	total, err := s.shipmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ShipmentResponse]{}, err
	}

	names := s.carrierNames(ctx, shipments)
	responses := make([]ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		responses = append(responses, ToShipmentResponse(&shipments[i], names[shipments[i].CarrierID]))
	}

	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// ListByOrder returns every shipment scheduled for one order, newest first
func (s *ShipmentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]ShipmentResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	shipments, err := s.shipmentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	names := s.carrierNames(ctx, shipments)
	responses := make([]ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		responses = append(responses, ToShipmentResponse(&shipments[i], names[shipments[i].CarrierID]))
	}
	return responses, nil
}

// UpdateStatus moves a shipment to a new status and synchronizes the
// owning order: in_transit marks the order shipped, delivered marks it
// delivered. Cancellation carries a reason and leaves the order alone.
func (s *ShipmentService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateShipmentStatusRequest) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := shipping.ShipmentStatus(req.Status)
	if target == shipping.ShipmentStatusCanceled {
		if err := shipment.Cancel(req.Reason); err != nil {
			return nil, err
		}
	} else {
		if err := shipment.UpdateStatus(target); err != nil {
			return nil, err
		}
	}

	// Stage the order-side transition before persisting anything: when
	// the order cannot follow (e.g. it was canceled independently) the
	// request fails with no partial write.
	order, err := s.stageOrderSync(ctx, shipment.OrderID, target)
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	if order != nil {
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}
		s.publish(ctx, order.GetDomainEvents())
		order.ClearDomainEvents()
	}

	s.publish(ctx, shipment.GetDomainEvents())
	shipment.ClearDomainEvents()

	response := ToShipmentResponse(shipment, s.carrierName(ctx, shipment.CarrierID))
	return &response, nil
}

// Metadata returns the shipment statuses and active carriers for UI selectors
func (s *ShipmentService) Metadata(ctx context.Context) (*ShipmentMetadataResponse, error) {
	carriers, err := s.carrierRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]string, 0, 4)
	for _, status := range shipping.ShipmentStatuses() {
		statuses = append(statuses, string(status))
	}

	carrierResponses := make([]CarrierResponse, 0, len(carriers))
	for i := range carriers {
		carrierResponses = append(carrierResponses, ToCarrierResponse(&carriers[i]))
	}

	return &ShipmentMetadataResponse{
		Statuses: statuses,
		Carriers: carrierResponses,
	}, nil
}

// stageOrderSync mirrors a shipment status change onto the order in
// memory: in_transit maps to shipped, delivered to delivered. It returns
// the mutated order for the caller to persist, or nil when the target
// carries no order-side effect or the order is already there.
func (s *ShipmentService) stageOrderSync(ctx context.Context, orderID uuid.UUID, target shipping.ShipmentStatus) (*trade.Order, error) {
	var orderTarget trade.OrderStatus
	switch target {
	case shipping.ShipmentStatusInTransit:
		orderTarget = trade.OrderStatusShipped
	case shipping.ShipmentStatusDelivered:
		orderTarget = trade.OrderStatusDelivered
	default:
		return nil, nil
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == orderTarget {
		return nil, nil
	}

	if err := order.UpdateStatus(orderTarget); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *ShipmentService) carrierName(ctx context.Context, carrierID uuid.UUID) string {
	carrier, err := s.carrierRepo.FindByID(ctx, carrierID)
	if err != nil {
		return ""
	}
	return carrier.Name
}

func (s *ShipmentService) carrierNames(ctx context.Context, shipments []shipping.Shipment) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for i := range shipments {
		id := shipments[i].CarrierID
		if _, ok := names[id]; ok {
			continue
		}
		carrier, err := s.carrierRepo.FindByID(ctx, id)
		if err != nil {
			names[id] = ""
			continue
		}
		names[id] = carrier.Name
	}
	return names
}

func (s *ShipmentService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
