package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when neither the request nor the configuration names one.
const DefaultCurrency = "PKR"

var printer = message.NewPrinter(language.English)

// ValidateCurrency checks that code is an ISO 4217 currency code and returns its canonical form.
func ValidateCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unknown currency '%s'", apperrors.ErrValidation, code)
	}
	return unit.String(), nil
}

// Format renders an amount for display, e.g. "PKR 45,000.00".
// It is presentation only: the value is rounded first and never fed back into arithmetic.
// Digits come from the decimal itself; only the integer part goes through the printer for grouping.
func Format(amount decimal.Decimal, currencyCode string) string {
	code, err := ValidateCurrency(currencyCode)
	if err != nil {
		code = DefaultCurrency
	}
	fixed := Round(amount).StringFixed(Places)
	sign := ""
	if rest, negative := strings.CutPrefix(fixed, "-"); negative {
		sign, fixed = "-", rest
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = printer.Sprintf("%v", number.Decimal(n))
	}
	return fmt.Sprintf("%s %s%s.%s", code, sign, whole, frac)
}
