package money

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawAmount keeps the exact text a form submitted for a numeric field.
// It unmarshals from a JSON string or a JSON number, so the parse boundary decides what is valid.
type RawAmount string

// UnmarshalJSON implements json.Unmarshaler.
func (r *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RawAmount(s)
		return nil
	}
	*r = RawAmount(strings.TrimSpace(string(data)))
	return nil
}

// String returns the raw text.
func (r RawAmount) String() string {
	return string(r)
}
