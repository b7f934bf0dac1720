package coerce

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Defaults used when a server value is absent or unparseable.
const (
	DefaultPrice  = 0
	DefaultMinPax = 1
	DefaultMaxPax = 10
)

// Option is one selectable entry of a multi-select value.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// DateRange is the canonical form of every date-span shape the backend emits.
type DateRange struct {
	From time.Time `json:"from" yaml:"from"`
	To   time.Time `json:"to" yaml:"to"`
}

// IsZero reports whether neither end of the range is set.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// UnmarshalJSON accepts {from,to}, {startDate,endDate}, or a single ISO string
// (treated as a one-day range). Unparseable input leaves the range zero; the
// hydration defaults kick in later.
func (r *DateRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if t, ok := parseTime(s); ok {
			r.From, r.To = t, t
		}
		return nil
	}
	var obj struct {
		From      any `json:"from"`
		To        any `json:"to"`
		StartDate any `json:"startDate"`
		EndDate   any `json:"endDate"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	if obj.From == nil {
		obj.From = obj.StartDate
	}
	if obj.To == nil {
		obj.To = obj.EndDate
	}
	if t, ok := anyTime(obj.From); ok {
		r.From = t
	}
	if t, ok := anyTime(obj.To); ok {
		r.To = t
	}
	return nil
}

// Float parses a numeric value of unknown shape, falling back to def.
func Float(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

// Int parses an integer value of unknown shape, falling back to def.
func Int(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int(f)
		}
	}
	return def
}

// Bool normalizes booleans, "true"/"false" strings (case-insensitive), and
// numeric truthiness to a strict bool. nil is false.
func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1":
			return true
		case "false", "0", "":
			return false
		}
		return true
	case float64:
		return t != 0
	case int:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case nil:
		return false
	}
	return true
}

// AsDateRange normalizes any date-span shape to a DateRange. Absent or invalid
// ends default to now (the same instant for both).
func AsDateRange(v any, now time.Time) DateRange {
	r := DateRange{}
	switch t := v.(type) {
	case DateRange:
		r = t
	case *DateRange:
		if t != nil {
			r = *t
		}
	case time.Time:
		r.From, r.To = t, t
	case string:
		if parsed, ok := parseTime(t); ok {
			r.From, r.To = parsed, parsed
		} else {
			// maybe a JSON-encoded object
			_ = json.Unmarshal([]byte(t), &r)
		}
	case map[string]any:
		from := t["from"]
		if from == nil {
			from = t["startDate"]
		}
		to := t["to"]
		if to == nil {
			to = t["endDate"]
		}
		if parsed, ok := anyTime(from); ok {
			r.From = parsed
		}
		if parsed, ok := anyTime(to); ok {
			r.To = parsed
		}
	}
	if r.From.IsZero() {
		r.From = now
	}
	if r.To.IsZero() {
		r.To = now
	}
	return r
}

// MultiSelect normalizes a multi-select value: a flat string slice, a slice of
// {label,value} objects, or a JSON-encoded string of either. Malformed entries
// are dropped.
func MultiSelect(v any) []Option {
	switch t := v.(type) {
	case []Option:
		return t
	case []string:
		out := make([]Option, 0, len(t))
		for _, s := range t {
			out = append(out, Option{Label: s, Value: s})
		}
		return out
	case []any:
		out := make([]Option, 0, len(t))
		for _, e := range t {
			switch el := e.(type) {
			case string:
				out = append(out, Option{Label: el, Value: el})
			case map[string]any:
				opt := Option{}
				if s, ok := el["label"].(string); ok {
					opt.Label = s
				}
				if s, ok := el["value"].(string); ok {
					opt.Value = s
				}
				if opt.Value == "" {
					opt.Value = opt.Label
				}
				if opt.Label == "" {
					opt.Label = opt.Value
				}
				if opt.Label != "" {
					out = append(out, opt)
				}
			}
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return []Option{}
		}
		var raw any
		if err := json.Unmarshal([]byte(s), &raw); err == nil {
			return MultiSelect(raw)
		}
		// plain string, treat as a single option
		return []Option{{Label: s, Value: s}}
	}
	return []Option{}
}

// Strings flattens a multi-select-ish value to its string values.
func Strings(v any) []string {
	opts := MultiSelect(v)
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func anyTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		return parseTime(t)
	}
	return time.Time{}, false
}
