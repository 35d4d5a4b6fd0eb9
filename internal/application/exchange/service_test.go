package exchange

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/infrastructure/cache"
)

func newService() *Service {
	return NewService(cache.NewRateCache(time.Hour, 100, nil))
}

func TestService_Rates(t *testing.T) {
	t.Run("defaults to USD and marks first lookup uncached", func(t *testing.T) {
		service := newService()

		resp, err := service.Rates(context.Background(), RatesQuery{})

		require.NoError(t, err)
		assert.Equal(t, "USD", resp.Base)
		assert.Equal(t, "latest", resp.Date)
		assert.False(t, resp.Cached)
		assert.Equal(t, "5.2", resp.Rates["BRL"])
	})

	t.Run("second lookup for the same base hits the cache", func(t *testing.T) {
		service := newService()

		_, err := service.Rates(context.Background(), RatesQuery{Base: "eur"})
		require.NoError(t, err)

		resp, err := service.Rates(context.Background(), RatesQuery{Base: "EUR"})
		require.NoError(t, err)
		assert.True(t, resp.Cached)
		assert.Equal(t, "EUR", resp.Base)
		assert.Equal(t, "1", resp.Rates["EUR"])
	})

	t.Run("distinct dates are distinct cache entries", func(t *testing.T) {
		service := newService()

		first, err := service.Rates(context.Background(), RatesQuery{Base: "USD", Date: "2026-08-01"})
		require.NoError(t, err)
		second, err := service.Rates(context.Background(), RatesQuery{Base: "USD", Date: "2026-08-02"})
		require.NoError(t, err)

		assert.False(t, first.Cached)
		assert.False(t, second.Cached)
	})

	t.Run("rejects an unsupported base", func(t *testing.T) {
		service := newService()

		_, err := service.Rates(context.Background(), RatesQuery{Base: "XYZ"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNSUPPORTED_CURRENCY", domainErr.Code)
	})
}

func TestService_Convert(t *testing.T) {
	t.Run("converts between supported currencies", func(t *testing.T) {
		service := newService()

		resp, err := service.Convert(context.Background(), ConvertRequest{
			From:   "usd",
			To:     "brl",
			Amount: "100",
		})

		require.NoError(t, err)
		assert.Equal(t, "USD", resp.From)
		assert.Equal(t, "BRL", resp.To)
		assert.Equal(t, "5.2", resp.Rate)
		assert.Equal(t, "520", resp.Converted)
	})

	t.Run("rejects unsupported currencies", func(t *testing.T) {
		service := newService()

		for _, req := range []ConvertRequest{
			{From: "XYZ", To: "USD", Amount: "1"},
			{From: "USD", To: "XYZ", Amount: "1"},
		} {
			_, err := service.Convert(context.Background(), req)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "UNSUPPORTED_CURRENCY", domainErr.Code)
		}
	})

	t.Run("rejects malformed and negative amounts", func(t *testing.T) {
		service := newService()

		for _, amount := range []string{"abc", "-10"} {
			_, err := service.Convert(context.Background(), ConvertRequest{
				From:   "USD",
				To:     "EUR",
				Amount: amount,
			})
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		}
	})
}

func TestService_SupportedCurrencies(t *testing.T) {
	service := newService()

	codes := service.SupportedCurrencies()

	assert.Len(t, codes, 10)
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "JPY")
	assert.IsIncreasing(t, codes)
}
