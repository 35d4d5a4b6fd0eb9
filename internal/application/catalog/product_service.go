package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/trade"
)

// ProductService handles product business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	orderRepo      trade.OrderRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, orderRepo trade.OrderRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new product. Duplicate codes are rejected.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT",
			fmt.Sprintf("A product with code %s already exists", req.Code))
	}

	product, err := catalog.NewProduct(req.Code, req.Name, catalog.Category(req.Category),
		req.Price, req.Quantity, req.MinimumStock)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
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
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	return shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize), nil
}

// ListLowStock retrieves products below their minimum stock or at zero
func (s *ProductService) ListLowStock(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product's basic information
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, catalog.Category(req.Category), req.Price); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock applies an admin stock edit. Last writer wins.
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.AdjustStock(req.Quantity, req.MinimumStock); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. Products referenced by order items cannot be
// deleted, the history must stay intact.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	references, err := s.orderRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return shared.NewDomainError("CONFLICT",
			fmt.Sprintf("Product %s is referenced by existing orders and cannot be deleted", product.Code))
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, catalog.NewProductDeletedEvent(product))
	}
	return nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, product.GetDomainEvents()...); err == nil {
		product.ClearDomainEvents()
	}
}
