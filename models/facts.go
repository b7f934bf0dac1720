package models

import (
	"encoding/json"

	"tourdesk/coerce"
)

type FactFieldType string

const (
	FactPlainText    FactFieldType = "Plain Text"
	FactSingleSelect FactFieldType = "Single Select"
	FactMultiSelect  FactFieldType = "Multi Select"
)

// Fact is one tour fact. The value shape is coupled to FieldType: Plain
// Text/Single Select carry a flat string list, Multi Select carries
// {label,value} options. FactValue keeps the two apart as a closed variant
// instead of sniffing shapes at every use site.
type Fact struct {
	Title     string        `json:"title"`
	FieldType FactFieldType `json:"field_type"`
	Value     FactValue     `json:"value"`
	Icon      string        `json:"icon,omitempty"`
}

// FactValue holds exactly one of the two value shapes.
type FactValue struct {
	Texts   []string `json:"-" yaml:"texts,omitempty"`
	Options []Option `json:"-" yaml:"options,omitempty"`
}

// PlainValue builds a plain-text/single-select value.
func PlainValue(texts ...string) FactValue {
	return FactValue{Texts: texts}
}

// SelectValue builds a multi-select value.
func SelectValue(opts ...Option) FactValue {
	return FactValue{Options: opts}
}

// IsMultiSelect reports which variant is populated.
func (v FactValue) IsMultiSelect() bool { return v.Options != nil }

// MarshalJSON writes whichever variant is populated; an empty value encodes
// as an empty array so the backend never sees null.
func (v FactValue) MarshalJSON() ([]byte, error) {
	if v.Options != nil {
		return json.Marshal(v.Options)
	}
	if v.Texts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Texts)
}

// UnmarshalJSON repairs whatever the backend stored: flat string arrays,
// {label,value} arrays, JSON-encoded strings of either, or mixed arrays
// (a known data-integrity bug upstream). Mixed input collapses into the
// variant of its first well-formed element; malformed entries are dropped.
func (v *FactValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = repairFactValue(raw)
	return nil
}

func repairFactValue(raw any) FactValue {
	switch t := raw.(type) {
	case nil:
		return FactValue{}
	case string:
		// stringified JSON or a bare value
		var nested any
		if err := json.Unmarshal([]byte(t), &nested); err == nil {
			if _, again := nested.(string); !again {
				return repairFactValue(nested)
			}
		}
		if t == "" {
			return FactValue{}
		}
		return PlainValue(t)
	case []any:
		for _, e := range t {
			if _, ok := e.(map[string]any); ok {
				return SelectValue(coerce.MultiSelect(t)...)
			}
		}
		texts := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				texts = append(texts, s)
			}
		}
		return FactValue{Texts: texts}
	case map[string]any:
		// single stray option object
		return SelectValue(coerce.MultiSelect([]any{t})...)
	}
	return FactValue{}
}

// Normalize forces the value into the shape its field type demands.
func (f *Fact) Normalize() {
	switch f.FieldType {
	case FactMultiSelect:
		if f.Value.Options == nil {
			opts := make([]Option, 0, len(f.Value.Texts))
			for _, s := range f.Value.Texts {
				opts = append(opts, Option{Label: s, Value: s})
			}
			f.Value = SelectValue(opts...)
		}
	default:
		if f.Value.Texts == nil {
			texts := make([]string, 0, len(f.Value.Options))
			for _, o := range f.Value.Options {
				texts = append(texts, o.Value)
			}
			f.Value = FactValue{Texts: texts}
		}
	}
}
