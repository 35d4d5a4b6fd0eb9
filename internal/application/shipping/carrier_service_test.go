package shipping

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/shipping"
)

func TestCarrierService_Create(t *testing.T) {
	t.Run("registers an active carrier", func(t *testing.T) {
		carrierRepo := new(MockCarrierRepository)
		service := NewCarrierService(carrierRepo)

		carrierRepo.On("Save", mock.Anything, mock.AnythingOfType("*shipping.Carrier")).Return(nil)

		resp, err := service.Create(context.Background(), CreateCarrierRequest{
			Name:         "Nordic Freight",
			ContactEmail: "dispatch@nordicfreight.example",
			ContactPhone: "+47 555 0101",
		})

		require.NoError(t, err)
		assert.Equal(t, "Nordic Freight", resp.Name)
		assert.True(t, resp.Active)
		carrierRepo.AssertExpectations(t)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		carrierRepo := new(MockCarrierRepository)
		service := NewCarrierService(carrierRepo)

		_, err := service.Create(context.Background(), CreateCarrierRequest{Name: "   "})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
		carrierRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCarrierService_Update(t *testing.T) {
	t.Run("updates contact info and toggles active", func(t *testing.T) {
		carrierRepo := new(MockCarrierRepository)
		service := NewCarrierService(carrierRepo)

		carrier := testCarrier("Nordic Freight", true)
		carrierRepo.On("FindByID", mock.Anything, carrier.ID).Return(carrier, nil)
		carrierRepo.On("Save", mock.Anything, carrier).Return(nil)

		inactive := false
		resp, err := service.Update(context.Background(), carrier.ID, UpdateCarrierRequest{
			Name:         "Nordic Freight AS",
			ContactEmail: "ops@nordicfreight.example",
			Active:       &inactive,
		})

		require.NoError(t, err)
		assert.Equal(t, "Nordic Freight AS", resp.Name)
		assert.False(t, resp.Active)
		carrierRepo.AssertExpectations(t)
	})

	t.Run("leaves active untouched when flag omitted", func(t *testing.T) {
		carrierRepo := new(MockCarrierRepository)
		service := NewCarrierService(carrierRepo)

		carrier := testCarrier("Nordic Freight", true)
		carrierRepo.On("FindByID", mock.Anything, carrier.ID).Return(carrier, nil)
		carrierRepo.On("Save", mock.Anything, carrier).Return(nil)

		resp, err := service.Update(context.Background(), carrier.ID, UpdateCarrierRequest{
			Name: "Nordic Freight",
		})

		require.NoError(t, err)
		assert.True(t, resp.Active)
	})

	t.Run("propagates not found", func(t *testing.T) {
		carrierRepo := new(MockCarrierRepository)
		service := NewCarrierService(carrierRepo)

		carrier := testCarrier("Nordic Freight", true)
		carrierRepo.On("FindByID", mock.Anything, carrier.ID).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), carrier.ID, UpdateCarrierRequest{Name: "X"})

		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestCarrierService_Deactivate(t *testing.T) {
	carrierRepo := new(MockCarrierRepository)
	service := NewCarrierService(carrierRepo)

	carrier := testCarrier("Nordic Freight", true)
	carrierRepo.On("FindByID", mock.Anything, carrier.ID).Return(carrier, nil)
	carrierRepo.On("Save", mock.Anything, carrier).Return(nil)

	resp, err := service.Deactivate(context.Background(), carrier.ID)

	require.NoError(t, err)
	assert.False(t, resp.Active)
	carrierRepo.AssertExpectations(t)
}

func TestCarrierService_List(t *testing.T) {
	carrierRepo := new(MockCarrierRepository)
	service := NewCarrierService(carrierRepo)

	carriers := []shipping.Carrier{*testCarrier("Nordic Freight", true), *testCarrier("Baltic Express", false)}
	carrierRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 1 && f.PageSize == 20 && f.Search == "freight"
	})).Return(carriers, nil)
	carrierRepo.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

	page, err := service.List(context.Background(), CarrierListFilter{Search: "freight"})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.TotalPages)
}
