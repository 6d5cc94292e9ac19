// Package money converts exact decimal amounts into integer minor units for
// storage and invoicing, applying banker's rounding exactly once per §4.2/§7.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// precision maps an ISO currency code to the number of minor-unit decimal places.
// Grounded on the Rust original's currency table; zero-decimal and three-decimal
// currencies are the only deviations from the default of 2.
var precision = map[string]int32{
	"JPY": 0, "KRW": 0, "VND": 0, "CLP": 0, "ISK": 0,
	"BHD": 3, "KWD": 3, "OMR": 3, "TND": 3,
}

// Precision returns the number of minor-unit decimals for currency, defaulting to 2.
func Precision(currency string) int32 {
	if p, ok := precision[strings.ToUpper(currency)]; ok {
		return p
	}
	return 2
}

// ToMinorUnits rounds amount (a major-unit decimal, e.g. 12.345 USD) to the
// currency's minor-unit precision using banker's rounding (round-half-to-even),
// per §4.2's "rounding is applied ONCE to the final line total" rule, and returns
// the integer minor-unit amount (e.g. 1235 cents would instead round to 1234 if
// the discarded digit lands exactly on the tie).
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	p := Precision(currency)
	scaled := amount.Shift(p).RoundBank(0)
	return scaled.IntPart()
}

// FromMinorUnits converts an integer minor-unit amount back to a major-unit decimal.
func FromMinorUnits(minorUnits int64, currency string) decimal.Decimal {
	p := Precision(currency)
	return decimal.New(minorUnits, -p)
}
