package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/shipping"
)

// CarrierService handles carrier business operations
type CarrierService struct {
	carrierRepo    shipping.CarrierRepository
	eventPublisher shared.EventPublisher
}

// NewCarrierService creates a new CarrierService
func NewCarrierService(carrierRepo shipping.CarrierRepository) *CarrierService {
	return &CarrierService{carrierRepo: carrierRepo}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CarrierService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new carrier
func (s *CarrierService) Create(ctx context.Context, req CreateCarrierRequest) (*CarrierResponse, error) {
	carrier, err := shipping.NewCarrier(req.Name, req.ContactEmail, req.ContactPhone)
	if err != nil {
		return nil, err
	}

	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, carrier.GetDomainEvents()...); err == nil {
			carrier.ClearDomainEvents()
		}
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// GetByID retrieves a carrier by ID
func (s *CarrierService) GetByID(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// List retrieves carriers with filtering and pagination
func (s *CarrierService) List(ctx context.Context, filter CarrierListFilter) (shared.Paginated[CarrierResponse], error) {
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

	carriers, err := s.carrierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CarrierResponse]{}, err
	}
	total, err := s.carrierRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CarrierResponse]{}, err
	}

	responses := make([]CarrierResponse, 0, len(carriers))
	for i := range carriers {
		responses = append(responses, ToCarrierResponse(&carriers[i]))
	}

	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update updates a carrier's contact information and active flag
func (s *CarrierService) Update(ctx context.Context, id uuid.UUID, req UpdateCarrierRequest) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := carrier.Update(req.Name, req.ContactEmail, req.ContactPhone); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			carrier.Activate()
		} else {
			carrier.Deactivate()
		}
	}

	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// Deactivate soft-disables a carrier for new shipments
func (s *CarrierService) Deactivate(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	carrier.Deactivate()

	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}
