package dto

import (
	"github.com/flourmill/mill_ledger/internal/core/forms"
	"github.com/flourmill/mill_ledger/internal/utils/money"
)

type fieldValue struct {
	field string
	value string
}

// applyFields sets every non-blank value on top of the form's defaults, in order.
// A blank value keeps the default (today's date, cash, the configured currency).
func applyFields[S forms.Reducer[S]](state S, values ...fieldValue) S {
	actions := make([]forms.Action, 0, len(values))
	for _, v := range values {
		if v.value == "" {
			continue
		}
		actions = append(actions, forms.Set(v.field, v.value))
	}
	return forms.Apply(state, actions...)
}

func raw(field string, amount money.RawAmount) fieldValue {
	return fieldValue{field: field, value: amount.String()}
}

// ErrorResponse is the body of every failed request.
// Values echoes the submitted form so the client can keep what the user typed.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Values map[string]string `json:"values,omitempty"`
}
