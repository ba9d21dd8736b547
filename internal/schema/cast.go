// Package schema implements the coercion layer between raw persisted
// documents and the canonical typed shapes the rest of the system consumes.
//
// Each entity has three lifecycle casts:
//
//   - fetch:  total — every declared field comes back defaulted, safe to render
//   - create: documented defaults for omitted fields, provided values coerced
//   - update: sparse patch — only fields present in the input appear
//
// Casting never fails: missing fields are filled, unknown fields are stripped,
// wrongly-typed values are coerced on a best-effort basis. Validity is a
// separate boolean check.
package schema

import (
	"strconv"
	"strings"
)

// asString coerces scalars to text. Numeric input (a phone typed without
// quotes ends up as a JSON number) is formatted without an exponent.
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// asNumber coerces numbers and numeric-looking text to float64.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asInt(v any) (int64, bool) {
	f, ok := asNumber(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// asBool accepts booleans plus the string forms that HTML forms post back ("false").
func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, false
		}
		return b, true
	case float64:
		return t != 0, true
	case int:
		return t != 0, true
	}
	return false, false
}

// asStringSlice coerces a list of any scalars to a list of text.
func asStringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		if already, ok := v.([]string); ok {
			out := make([]string, len(already))
			copy(out, already)
			return out, true
		}
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := asString(item)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out, true
}

// asRecord returns the value as a raw document, nil when it is not one.
func asRecord(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asRecordSlice returns the value as a list of raw documents.
func asRecordSlice(v any) ([]map[string]any, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, true
}

// putString coerces raw[key] into patch[key] when present.
func putString(patch, raw map[string]any, key string) {
	if v, ok := raw[key]; ok {
		if s, ok := asString(v); ok {
			patch[key] = s
		}
	}
}

func putInt(patch, raw map[string]any, key string) {
	if v, ok := raw[key]; ok {
		if n, ok := asInt(v); ok {
			patch[key] = n
		}
	}
}

func putNumber(patch, raw map[string]any, key string) {
	if v, ok := raw[key]; ok {
		if n, ok := asNumber(v); ok {
			patch[key] = n
		}
	}
}

func putBool(patch, raw map[string]any, key string) {
	if v, ok := raw[key]; ok {
		if b, ok := asBool(v); ok {
			patch[key] = b
		}
	}
}

// stringOr reads a defaulted string field from a raw document.
func stringOr(raw map[string]any, key, fallback string) string {
	if v, ok := raw[key]; ok {
		if s, ok := asString(v); ok {
			return s
		}
	}
	return fallback
}

func intOr(raw map[string]any, key string, fallback int64) int64 {
	if v, ok := raw[key]; ok {
		if n, ok := asInt(v); ok {
			return n
		}
	}
	return fallback
}

func numberOr(raw map[string]any, key string, fallback float64) float64 {
	if v, ok := raw[key]; ok {
		if n, ok := asNumber(v); ok {
			return n
		}
	}
	return fallback
}

func boolOr(raw map[string]any, key string, fallback bool) bool {
	if v, ok := raw[key]; ok {
		if b, ok := asBool(v); ok {
			return b
		}
	}
	return fallback
}
