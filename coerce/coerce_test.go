package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{true, true},
		{"false", false},
		{"False", false},
		{false, false},
		{0, false},
		{1, true},
		{float64(0), false},
		{float64(2), true},
		{nil, false},
		{"", false},
		{"yes", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Bool(c.in), "Bool(%#v)", c.in)
	}
}

func TestFloatAndInt(t *testing.T) {
	assert.Equal(t, 12.5, Float("12.5", DefaultPrice))
	assert.Equal(t, 12.5, Float(12.5, DefaultPrice))
	assert.Equal(t, float64(DefaultPrice), Float("abc", DefaultPrice))
	assert.Equal(t, float64(DefaultPrice), Float(nil, DefaultPrice))

	assert.Equal(t, 4, Int("4", DefaultMinPax))
	assert.Equal(t, 4, Int(4.9, DefaultMinPax))
	assert.Equal(t, DefaultMinPax, Int("", DefaultMinPax))
	assert.Equal(t, DefaultMaxPax, Int(nil, DefaultMaxPax))
}

func TestAsDateRange(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("startDate endDate keys", func(t *testing.T) {
		r := AsDateRange(map[string]any{
			"startDate": "2024-01-01",
			"endDate":   "2024-01-08",
		}, now)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
		assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), r.To)
	})

	t.Run("from to keys", func(t *testing.T) {
		r := AsDateRange(map[string]any{"from": "2024-03-05", "to": "2024-03-09"}, now)
		assert.Equal(t, 5, r.From.Day())
		assert.Equal(t, 9, r.To.Day())
	})

	t.Run("empty object defaults both ends to now", func(t *testing.T) {
		r := AsDateRange(map[string]any{}, now)
		assert.Equal(t, now, r.From)
		assert.Equal(t, now, r.To)
		assert.Equal(t, r.From, r.To)
	})

	t.Run("nil defaults to now", func(t *testing.T) {
		r := AsDateRange(nil, now)
		assert.Equal(t, now, r.From)
		assert.Equal(t, now, r.To)
	})

	t.Run("single ISO string", func(t *testing.T) {
		r := AsDateRange("2024-02-10", now)
		assert.Equal(t, r.From, r.To)
		assert.Equal(t, 10, r.From.Day())
	})
}

func TestMultiSelect(t *testing.T) {
	t.Run("flat strings", func(t *testing.T) {
		got := MultiSelect([]any{"wifi", "pool"})
		require.Len(t, got, 2)
		assert.Equal(t, Option{Label: "wifi", Value: "wifi"}, got[0])
	})

	t.Run("label value objects", func(t *testing.T) {
		got := MultiSelect([]any{
			map[string]any{"label": "Free WiFi", "value": "wifi"},
		})
		require.Len(t, got, 1)
		assert.Equal(t, Option{Label: "Free WiFi", Value: "wifi"}, got[0])
	})

	t.Run("json encoded string", func(t *testing.T) {
		got := MultiSelect(`["a","b"]`)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[1].Value)

		got = MultiSelect(`[{"label":"A","value":"a"}]`)
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].Label)
	})

	t.Run("malformed entries dropped", func(t *testing.T) {
		got := MultiSelect([]any{"ok", 42, map[string]any{}})
		require.Len(t, got, 1)
		assert.Equal(t, "ok", got[0].Value)
	})
}
