// Package fx holds the static exchange-rate table and money conversion
// used to roll multi-currency balances into a single home-currency figure.
package fx

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// pivotValues are each currency's fixed reference value against USD,
// the pivot unit. rate(from, to) = pivot(from) / pivot(to).
var pivotValues = map[domain.Currency]decimal.Decimal{
	domain.USD: decimal.RequireFromString("1.0"),
	domain.SGD: decimal.RequireFromString("0.74"),
	domain.PHP: decimal.RequireFromString("0.018"),
	domain.MYR: decimal.RequireFromString("0.22"),
	domain.IDR: decimal.RequireFromString("0.000063"),
	domain.THB: decimal.RequireFromString("0.028"),
	domain.VND: decimal.RequireFromString("0.000040"),
}

// rateVariations simulates coarse historical drift, keyed by month. The
// multiplier is applied to both pivot legs, so it cancels in the ratio
// today; the hook exists for future divergent per-currency variation.
var rateVariations = map[string]decimal.Decimal{
	"2025-01": decimal.RequireFromString("1.0"),
	"2025-02": decimal.RequireFromString("1.005"),
	"2025-03": decimal.RequireFromString("0.998"),
	"2025-04": decimal.RequireFromString("1.012"),
	"2025-05": decimal.RequireFromString("0.995"),
	"2025-06": decimal.RequireFromString("1.008"),
}

var one = decimal.NewFromInt(1)

// Rate returns the exchange rate from one currency to another using the
// current reference values.
func Rate(from, to domain.Currency) decimal.Decimal {
	return RateOn(from, to, time.Time{})
}

// RateOn returns the exchange rate as of a historical date. A zero time
// means "no date": the base rate is used. Unknown months fall back to a
// neutral multiplier.
func RateOn(from, to domain.Currency, on time.Time) decimal.Decimal {
	if from == to {
		return one
	}

	variation := one
	if !on.IsZero() {
		if v, ok := rateVariations[on.Format("2006-01")]; ok {
			variation = v
		}
	}

	fromPivot := pivotValues[from].Mul(variation)
	toPivot := pivotValues[to].Mul(variation)
	return fromPivot.Div(toPivot)
}

// Convert converts an amount between currencies, rounded to the nearest
// cent (half away from zero).
func Convert(amount float64, from, to domain.Currency) float64 {
	return ConvertOn(amount, from, to, time.Time{})
}

// ConvertOn is Convert against a historical date's rate.
func ConvertOn(amount float64, from, to domain.Currency, on time.Time) float64 {
	result, _ := decimal.NewFromFloat(amount).Mul(RateOn(from, to, on)).Round(2).Float64()
	return result
}
