package proposal

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a monetary value carried by a route proposal.
//
// Proposals arrive from upstream quoting systems that are not strict about
// numeric types: the same field may be a JSON number, a numeric string, or
// garbage. Amounts are parsed defensively — anything that is not a number
// decodes to 0 rather than failing the whole selection.
type Amount float64

// UnmarshalJSON accepts JSON numbers and numeric strings.
// Null, non-numeric strings, and other shapes decode to 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			*a = Amount(parsed)
			return nil
		}
	}

	*a = 0
	return nil
}

// MarshalJSON encodes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Float64 returns the underlying value.
func (a Amount) Float64() float64 {
	return float64(a)
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a == 0
}
