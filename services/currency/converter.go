package currency

import (
	// External Packages
	"github.com/shopspring/decimal"
)

// ConvertFunc converts an amount between currency codes. ok is false when a
// code is unknown; callers fall back to the unconverted amount.
type ConvertFunc func(amount decimal.Decimal, from, to string) (decimal.Decimal, bool)

// Converter converts through a base currency using a preloaded rate table.
// Rates are expressed as units of a currency per one unit of the base.
type Converter struct {
	Base  string
	rates map[string]decimal.Decimal
}

func NewConverter(base string, rates map[string]decimal.Decimal) *Converter {
	return &Converter{Base: base, rates: rates}
}

func (c *Converter) rate(code string) (decimal.Decimal, bool) {
	if code == c.Base {
		return decimal.NewFromInt(1), true
	}
	rate, ok := c.rates[code]
	if !ok || rate.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return rate, true
}

// Convert converts amount from one currency code to another.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	if from == to {
		return amount, true
	}
	fromRate, ok := c.rate(from)
	if !ok {
		return amount, false
	}
	toRate, ok := c.rate(to)
	if !ok {
		return amount, false
	}
	return amount.Div(fromRate).Mul(toRate), true
}
