package partner

import (
	"time"

	"github.com/stockroom/backend/internal/domain/partner"
)

// CreateCustomerRequest is the request to create a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
}

// CustomerListFilter carries list query options
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// CustomerResponse is the API view of a customer
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its API view
func ToCustomerResponse(customer *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}
