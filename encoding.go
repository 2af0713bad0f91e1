package checkedfloat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/tsatke/checkedfloat/internal/ieee"
)

// Parse parses a decimal or hexadecimal float literal as accepted by
// strconv.ParseFloat and checks it against C. Out-of-range literals parse
// to ±Inf and are then subject to the policy.
func Parse[F constraints.Float, C Checker[F]](s string) (Value[F, C], error) {
	f, err := strconv.ParseFloat(s, ieee.Of[F]().Bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value[F, C]{}, fmt.Errorf("parse: %w", err)
	}
	v, err := FromRaw[F, C](F(f))
	if err != nil {
		return v, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, nil
}

func (v Value[F, C]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses text with Parse. v is left unchanged on error.
func (v *Value[F, C]) UnmarshalText(text []byte) error {
	parsed, err := Parse[F, C](string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes finite values as JSON numbers and infinities as the
// strings "+Inf" and "-Inf", which JSON numbers cannot express.
func (v Value[F, C]) MarshalJSON() ([]byte, error) {
	if v.IsInf() {
		return json.Marshal(v.String())
	}
	return []byte(v.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string holding a float literal.
// The decoded value is checked against C. JSON null leaves v unchanged.
func (v *Value[F, C]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		return v.UnmarshalText([]byte(s))
	}
	return v.UnmarshalText(data)
}
