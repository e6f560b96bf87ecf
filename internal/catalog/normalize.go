package catalog

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// DisplayValue converts a loosely-typed wire attribute into a single
// display string. Raw arrays, raw objects, JSON-encoded strings
// (including double-encoded ones), delimited plain strings, numbers and
// booleans are all accepted; the result is "" when there is nothing to
// show. It never fails: unrecognized shapes degrade to a best-effort
// string.
func DisplayValue(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		// Not valid JSON at all; treat the raw bytes as plain text.
		return stripStray(trimmed)
	}
	return displayAny(v)
}

func displayAny(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return displayString(t)
	case []any:
		return joinNonEmpty(t)
	case map[string]any:
		return joinObjectValues(t)
	default:
		return ""
	}
}

func displayString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// A string that looks like JSON is usually a JSON-encoded attribute
	// that went through the backend as text. Parse and recurse so that
	// double-encoded values resolve; on parse failure fall back to
	// stripping the stray delimiters.
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") || strings.HasPrefix(s, `"`) {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			return displayAny(inner)
		}
		return stripStray(s)
	}
	return s
}

func joinNonEmpty(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		var rendered string
		if obj, ok := item.(map[string]any); ok {
			rendered = joinObjectValues(obj)
		} else {
			rendered = displayAny(item)
		}
		if rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, ", ")
}

// joinObjectValues joins an object's own values, sorted by key so the
// output is deterministic.
func joinObjectValues(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if rendered := displayAny(obj[k]); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, ", ")
}

func stripStray(s string) string {
	return strings.TrimSpace(strings.Trim(s, `"{}[]`))
}

// FormatBRL renders a price the storefront way: two decimal places,
// comma as the decimal separator, no thousands separator.
func FormatBRL(v float64) string {
	return "R$ " + strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
