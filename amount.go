package solidgate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies have no minor unit; their amounts are sent as-is.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {},
	"CLP": {},
	"DJF": {},
	"GNF": {},
	"ISK": {},
	"JPY": {},
	"KMF": {},
	"KRW": {},
	"PYG": {},
	"RWF": {},
	"UGX": {},
	"VND": {},
	"VUV": {},
	"XAF": {},
	"XOF": {},
	"XPF": {},
}

// MinorUnits converts a major-unit amount into the smallest currency unit
// expected by order amounts, e.g. 10.20 EUR becomes 1020.
func MinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if amount.IsNegative() {
		return 0, &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	scale := currencyScale(currency)
	minor := amount.Shift(scale)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, &ValidationError{Field: "amount", Message: fmt.Sprintf("has more than %d decimal places for %s", scale, currency)}
	}
	return minor.IntPart(), nil
}

// MajorUnits renders a minor-unit amount with the currency's number of decimals.
func MajorUnits(minor int64, currency string) string {
	scale := currencyScale(currency)
	return decimal.NewFromInt(minor).Shift(-scale).StringFixed(scale)
}

func currencyScale(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return 0
	}
	return 2
}
