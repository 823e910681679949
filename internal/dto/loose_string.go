package dto

import (
	"bytes"
	"encoding/json"
)

// LooseString accepts a JSON string, number or boolean and keeps its text, so
// `"amount": 950` and `"amount": "950"` bind the same way.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}

	*s = LooseString(data)
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
