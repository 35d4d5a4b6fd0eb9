package exchange

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stockroom/backend/internal/domain/exchange"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/infrastructure/cache"
)

// Service answers exchange-rate queries from the cached reference table
type Service struct {
	rates *cache.RateCache
}

// NewService creates a new exchange Service backed by the given cache
func NewService(rates *cache.RateCache) *Service {
	return &Service{rates: rates}
}

// Rates returns the rate table for the query's base currency
func (s *Service) Rates(ctx context.Context, query RatesQuery) (*RatesResponse, error) {
	base := strings.ToUpper(query.Base)
	if base == "" {
		base = "USD"
	}
	if !exchange.IsSupported(base) {
		return nil, shared.NewDomainError("UNSUPPORTED_CURRENCY",
			fmt.Sprintf("Currency %q is not supported", query.Base))
	}

	date := query.Date
	if date == "" {
		date = "latest"
	}

	result := s.rates.Lookup(base, date)

	rates := make(map[string]string, len(result.Table.Rates))
	for code, rate := range result.Table.Rates {
		rates[code] = rate.String()
	}

	return &RatesResponse{
		Base:   result.Table.Base,
		Date:   result.Table.Date,
		Rates:  rates,
		Cached: result.Cached,
	}, nil
}

// Convert converts an amount between two supported currencies
func (s *Service) Convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error) {
	from := strings.ToUpper(req.From)
	to := strings.ToUpper(req.To)
	if !exchange.IsSupported(from) {
		return nil, shared.NewDomainError("UNSUPPORTED_CURRENCY",
			fmt.Sprintf("Currency %q is not supported", req.From))
	}
	if !exchange.IsSupported(to) {
		return nil, shared.NewDomainError("UNSUPPORTED_CURRENCY",
			fmt.Sprintf("Currency %q is not supported", req.To))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Amount must be a decimal number")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Amount cannot be negative")
	}

	result := s.rates.Lookup(from, "latest")
	converted, rate, err := result.Table.Convert(amount, to)
	if err != nil {
		return nil, err
	}

	return &ConvertResponse{
		From:      from,
		To:        to,
		Amount:    amount.String(),
		Rate:      rate.String(),
		Converted: converted.String(),
		Cached:    result.Cached,
	}, nil
}

// SupportedCurrencies lists the currency codes the service accepts
func (s *Service) SupportedCurrencies() []string {
	codes := exchange.SupportedCurrencies()
	sort.Strings(codes)
	return codes
}
