package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference field as the ERP backend returns it: either a bare id string
// or, when the backend populates it, an object with at least an _id.
type Ref struct {
	ID          string `json:"_id"`
	Name        string `json:"name,omitempty"`
	AccountName string `json:"accountName,omitempty"`
	AccountType string `json:"accountType,omitempty"`
}

// UnmarshalJSON accepts null, "id" or {"_id": "id", ...}.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = Ref{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// DisplayName returns the best available human name for the referenced record.
func (r Ref) DisplayName() string {
	if r.AccountName != "" {
		return r.AccountName
	}
	return r.Name
}
