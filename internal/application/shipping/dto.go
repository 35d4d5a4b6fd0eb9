package shipping

import (
	"time"

	"github.com/stockroom/backend/internal/domain/shipping"
)

// CreateCarrierRequest is the request to register a carrier
type CreateCarrierRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=50"`
}

// UpdateCarrierRequest is the request to update a carrier
type UpdateCarrierRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=50"`
	Active       *bool  `json:"active"`
}

// CarrierListFilter carries list query options
type CarrierListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// CarrierResponse is the API view of a carrier
type CarrierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateShipmentRequest is the request to schedule a shipment
type CreateShipmentRequest struct {
	OrderID       string     `json:"order_id" binding:"required,uuid"`
	CarrierID     string     `json:"carrier_id" binding:"required,uuid"`
	TrackingCode  string     `json:"tracking_code" binding:"omitempty,max=100"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

// UpdateShipmentStatusRequest moves a shipment to a new status.
// Reason is only meaningful for cancellation.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required,shipment_status"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// ShipmentListFilter carries list query options
type ShipmentListFilter struct {
	Status    string `form:"status" binding:"omitempty,shipment_status"`
	CarrierID string `form:"carrier_id" binding:"omitempty,uuid"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// ShipmentResponse is the API view of a shipment
type ShipmentResponse struct {
	ID             string     `json:"id"`
	ShipmentNumber string     `json:"shipment_number"`
	OrderID        string     `json:"order_id"`
	CarrierID      string     `json:"carrier_id"`
	CarrierName    string     `json:"carrier_name,omitempty"`
	Status         string     `json:"status"`
	TrackingCode   string     `json:"tracking_code,omitempty"`
	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CancelReason   string     `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ShipmentMetadataResponse backs the UI selectors for shipment forms
type ShipmentMetadataResponse struct {
	Statuses []string          `json:"statuses"`
	Carriers []CarrierResponse `json:"carriers"`
}

// ToCarrierResponse converts a domain carrier to its API view
func ToCarrierResponse(carrier *shipping.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:           carrier.ID.String(),
		Name:         carrier.Name,
		ContactEmail: carrier.ContactEmail,
		ContactPhone: carrier.ContactPhone,
		Active:       carrier.Active,
		CreatedAt:    carrier.CreatedAt,
	}
}

// ToShipmentResponse converts a domain shipment to its API view.
// carrierName may be empty when the carrier was not resolved.
func ToShipmentResponse(shipment *shipping.Shipment, carrierName string) ShipmentResponse {
	return ShipmentResponse{
		ID:             shipment.ID.String(),
		ShipmentNumber: shipment.ShipmentNumber,
		OrderID:        shipment.OrderID.String(),
		CarrierID:      shipment.CarrierID.String(),
		CarrierName:    carrierName,
		Status:         string(shipment.Status),
		TrackingCode:   shipment.TrackingCode,
		ScheduledDate:  shipment.ScheduledDate,
		DeliveredAt:    shipment.DeliveredAt,
		CancelReason:   shipment.CancelReason,
		CreatedAt:      shipment.CreatedAt,
		UpdatedAt:      shipment.UpdatedAt,
	}
}
