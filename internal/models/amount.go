package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a float64 that tolerates malformed input. Configuration editors
// send free-form values; anything that does not parse as a number is coerced
// to zero so the financial views stay renderable.
type Amount float64

// UnmarshalJSON accepts numbers, numeric strings, null and garbage. Garbage
// becomes zero, never an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		*a = Amount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*a = Amount(v)
	return nil
}

// Float64 returns the coerced value
func (a Amount) Float64() float64 {
	return float64(a)
}
