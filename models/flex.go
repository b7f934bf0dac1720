package models

import (
	"encoding/json"

	"tourdesk/coerce"
)

// The backend is loose about scalar shapes: numbers arrive as strings, flags
// as "true"/"false", pax bounds inside mixed arrays. The Flex types absorb
// that at decode time so everything downstream is strictly typed.

type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = FlexBool(coerce.Bool(v))
	return nil
}

func (b FlexBool) Bool() bool { return bool(b) }

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(coerce.Float(v, coerce.DefaultPrice))
	return nil
}

func (f FlexFloat) Float() float64 { return float64(f) }

type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = FlexInt(coerce.Int(v, 0))
	return nil
}

func (i FlexInt) Int() int { return int(i) }

// UnmarshalJSON accepts [min,max] with numeric or string elements. Short or
// malformed arrays leave the missing bound zero; PaxRange.Min/Max apply the
// documented defaults.
func (p *PaxRange) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if len(raw) > 0 {
		p[0] = coerce.Int(raw[0], 0)
	}
	if len(raw) > 1 {
		p[1] = coerce.Int(raw[1], 0)
	}
	return nil
}
