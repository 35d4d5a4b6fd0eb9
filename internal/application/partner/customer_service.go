package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// CustomerService handles customer business operations
type CustomerService struct {
	customerRepo   partner.CustomerRepository
	eventPublisher shared.EventPublisher
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CustomerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a customer. Emails are unique; duplicates are rejected.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindByEmail(ctx, customer.Email); err == nil {
		return nil, shared.NewDomainError("CONFLICT",
			fmt.Sprintf("A customer with email %s already exists", customer.Email))
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, customer.GetDomainEvents()...); err == nil {
			customer.ClearDomainEvents()
		}
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) (shared.Paginated[CustomerResponse], error) {
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
	domainFilter.OrderBy = "name"
	domainFilter.OrderDir = "asc"

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}

	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}
