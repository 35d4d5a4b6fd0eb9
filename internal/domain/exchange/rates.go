package exchange

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/shared"
)

// referenceRates is the fixed table all rate lookups derive from,
// expressed against USD.
var referenceRates = map[string]decimal.Decimal{
	"USD": decimal.RequireFromString("1.0"),
	"EUR": decimal.RequireFromString("0.92"),
	"BRL": decimal.RequireFromString("5.20"),
	"GBP": decimal.RequireFromString("0.78"),
	"JPY": decimal.RequireFromString("150.45"),
	"CAD": decimal.RequireFromString("1.35"),
	"AUD": decimal.RequireFromString("1.52"),
	"CNY": decimal.RequireFromString("7.23"),
	"CHF": decimal.RequireFromString("0.89"),
	"MXN": decimal.RequireFromString("16.85"),
}

// RateTable holds exchange rates expressed against a base currency
type RateTable struct {
	Base  string
	Date  string
	Rates map[string]decimal.Decimal
}

// SupportedCurrencies returns the currency codes present in the reference table
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(referenceRates))
	for code := range referenceRates {
		codes = append(codes, code)
	}
	return codes
}

// IsSupported reports whether the currency exists in the reference table
func IsSupported(currency string) bool {
	_, ok := referenceRates[strings.ToUpper(currency)]
	return ok
}

// DeriveTable builds a rate table for the given base currency. An unknown
// base falls back to a divisor of 1, mirroring a direct read of the
// reference table.
func DeriveTable(base, date string) RateTable {
	base = strings.ToUpper(base)
	divisor, ok := referenceRates[base]
	if !ok || divisor.IsZero() {
		divisor = decimal.NewFromInt(1)
	}

	rates := make(map[string]decimal.Decimal, len(referenceRates))
	for code, rate := range referenceRates {
		rates[code] = rate.DivRound(divisor, 6)
	}

	return RateTable{
		Base:  base,
		Date:  date,
		Rates: rates,
	}
}

// Convert converts an amount from the table's base currency to the target.
// Fails when the target currency is absent from the table.
func (t RateTable) Convert(amount decimal.Decimal, target string) (decimal.Decimal, decimal.Decimal, error) {
	rate, ok := t.Rates[strings.ToUpper(target)]
	if !ok {
		return decimal.Zero, decimal.Zero, shared.NewDomainError("UNSUPPORTED_CURRENCY",
			fmt.Sprintf("Currency %q is not supported", target))
	}
	return amount.Mul(rate).Round(2), rate, nil
}
