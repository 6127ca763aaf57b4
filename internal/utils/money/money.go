// Package money holds the decimal parsing, rounding and formatting rules shared by every
// monetary figure in the ledger engine.
package money

import (
	"fmt"
	"strings"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Places is the number of fraction digits every derived amount is rounded to.
const Places = 2

// Round rounds d to two decimal places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Parse converts raw form input into a decimal.
// The second return value is false when nothing was entered, which is distinct from zero.
// Anything that is not a finite decimal yields ErrValidation; NaN never leaves this function.
func Parse(raw string) (decimal.Decimal, bool, error) {
	s := normalize(raw)
	if s == "" {
		return decimal.Zero, false, nil
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "nan") || strings.Contains(lower, "inf") {
		return decimal.Zero, true, fmt.Errorf("%w: '%s' is not a number", apperrors.ErrValidation, raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("%w: '%s' is not a number", apperrors.ErrValidation, raw)
	}
	return d, true, nil
}

// ParseOrZero is the lenient variant: unset or non-numeric input counts as zero.
func ParseOrZero(raw string) decimal.Decimal {
	d, _, err := Parse(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParsePtr parses raw input and returns nil when nothing was entered.
func ParsePtr(raw string) (*decimal.Decimal, error) {
	d, present, err := Parse(raw)
	if err != nil || !present {
		return nil, err
	}
	return &d, nil
}

// normalize trims whitespace and drops thousands separators ("45,000.50" -> "45000.50").
func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
