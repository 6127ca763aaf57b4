package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoMatchingAccount indicates that an account of the required type/category is missing
// from the supplied account set.
var ErrNoMatchingAccount = errors.New("no matching account")

// ErrInvalidAccountType indicates that an account was supplied for a role its type cannot fill.
var ErrInvalidAccountType = errors.New("invalid account type")

// ErrUnauthenticated indicates a missing, malformed or expired bearer token.
var ErrUnauthenticated = errors.New("authentication required")

// ErrNetwork indicates the ERP backend could not be reached.
var ErrNetwork = errors.New("network error")

// ErrServer indicates the ERP backend answered with an error status.
var ErrServer = errors.New("server error")

// ErrConflict indicates the request conflicts with the current state (e.g. a stale checkpoint).
var ErrConflict = errors.New("conflict")

// FieldErrors maps a form field name to the message that should be shown next to it.
// It always matches ErrValidation via errors.Is.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Is makes FieldErrors match ErrValidation.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add records a message for a field, keeping the first message if one already exists.
func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// Merge copies all entries of other into fe without overwriting existing ones.
func (fe FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		fe.Add(k, v)
	}
}

// OrNil returns nil when no field failed, so callers can `return errs.OrNil()`.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// NewFieldError builds a single-field validation error.
func NewFieldError(field, msg string) FieldErrors {
	return FieldErrors{field: msg}
}

// ServerError carries the status and message returned by the ERP backend.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend responded with status %d", ErrServer.Error(), e.StatusCode)
	}
	return fmt.Sprintf("%s: backend responded with status %d: %s", ErrServer.Error(), e.StatusCode, e.Message)
}

// Is makes ServerError match ErrServer, and ErrNotFound for 404 responses.
func (e *ServerError) Is(target error) bool {
	if target == ErrServer {
		return true
	}
	return target == ErrNotFound && e.StatusCode == 404
}
