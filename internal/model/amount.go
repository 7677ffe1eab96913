package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money value as reported upstream. The feed mostly sends
// JSON numbers but occasionally numeric strings; anything else decodes
// as zero. Numeric records whether the raw value was a JSON number;
// the rent detector and SACC resolver only trust those, while summary
// fallbacks accept coerced strings too.
type Amount struct {
	Value   decimal.Decimal
	Numeric bool
}

// NumericAmount builds an Amount that counts as a true JSON number.
func NumericAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Numeric: true}
}

// UnmarshalJSON coerces numbers and numeric strings; everything else
// (objects, arrays, booleans, garbage text) becomes zero rather than an
// error so one bad field never fails a whole category.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	t := bytes.TrimSpace(data)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return nil
	}
	if t[0] == '"' {
		var s string
		if json.Unmarshal(t, &s) != nil {
			return nil
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			a.Value = d
		}
		return nil
	}
	if d, err := decimal.NewFromString(string(t)); err == nil {
		a.Value = d
		a.Numeric = true
	}
	return nil
}

// MarshalJSON writes the decimal value.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Value.MarshalJSON()
}
