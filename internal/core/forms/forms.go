// Package forms holds the state of the data-entry forms as immutable values.
// A state only changes through a reducer, which returns a new value; derived figures are
// recomputed by the accounting engine on every field change.
package forms

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// ActionKind enumerates the reducer actions.
type ActionKind int

const (
	SetField ActionKind = iota
	Reset
	Touch
)

// Action is one user interaction with a form.
type Action struct {
	Kind  ActionKind
	Field string
	Value string
}

// Set builds a SetField action.
func Set(field, value string) Action {
	return Action{Kind: SetField, Field: field, Value: value}
}

// TouchField builds a Touch action.
func TouchField(field string) Action {
	return Action{Kind: Touch, Field: field}
}

// ResetForm builds a Reset action.
func ResetForm() Action {
	return Action{Kind: Reset}
}

// Reducer is implemented by every form state.
type Reducer[S any] interface {
	Reduce(Action) S
}

// Apply folds actions over state in order.
func Apply[S Reducer[S]](state S, actions ...Action) S {
	for _, a := range actions {
		state = state.Reduce(a)
	}
	return state
}

const dateLayout = "2006-01-02"

func touch(touched map[string]bool, field string) map[string]bool {
	next := maps.Clone(touched)
	if next == nil {
		next = map[string]bool{}
	}
	next[field] = true
	return next
}

func visible(errs apperrors.FieldErrors, touched map[string]bool, field string) string {
	if !touched[field] {
		return ""
	}
	return errs[field]
}

func unknownField(errs apperrors.FieldErrors, field string) apperrors.FieldErrors {
	next := maps.Clone(errs)
	if next == nil {
		next = apperrors.FieldErrors{}
	}
	next[field] = "unknown field"
	return next
}

// fieldErrorsOf extracts the per-field messages of a validation error.
func fieldErrorsOf(err error) apperrors.FieldErrors {
	if fe, ok := err.(apperrors.FieldErrors); ok {
		return maps.Clone(fe)
	}
	return apperrors.FieldErrors{}
}

// requireAmount parses a mandatory amount; it must be strictly positive.
func requireAmount(errs apperrors.FieldErrors, field, label, raw string) decimal.Decimal {
	d, present, err := money.Parse(raw)
	switch {
	case err != nil:
		errs.Add(field, label+" must be a number")
	case !present:
		errs.Add(field, label+" is required")
	case !d.IsPositive():
		errs.Add(field, label+" must be greater than zero")
	}
	return d
}

// optionalAmount parses an amount that may be left blank; blank is zero. Negative values are rejected.
func optionalAmount(errs apperrors.FieldErrors, field, label, raw string) decimal.Decimal {
	d, _, err := money.Parse(raw)
	if err != nil {
		errs.Add(field, label+" must be a number")
		return decimal.Zero
	}
	if d.IsNegative() {
		errs.Add(field, label+" must not be negative")
	}
	return d
}

func optionalInt(errs apperrors.FieldErrors, field, label, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs.Add(field, label+" must be a whole number")
		return 0
	}
	return n
}

func requireText(errs apperrors.FieldErrors, field, label, raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		errs.Add(field, label+" is required")
	}
	return s
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' is not a date", raw)
	}
	return t, nil
}

func requireDate(errs apperrors.FieldErrors, field, label, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		errs.Add(field, label+" is required")
		return time.Time{}
	}
	t, err := parseDate(raw)
	if err != nil {
		errs.Add(field, label+" must be a date (YYYY-MM-DD)")
	}
	return t
}
