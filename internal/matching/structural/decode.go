// Package structural implements the JSON and XML tree-walk matchers,
// the plain-text fallback, and the header/query/path/status/method
// matchers of spec §4.3-§4.6.
package structural

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

// DecodeJSON parses raw JSON bytes into the engine's Value sum type,
// using json.Number to preserve the integer-vs-decimal distinction
// that spec §4.2's scalar cross-product depends on.
func DecodeJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return value.Value{}, err
	}
	return fromRaw(raw), nil
}

func fromRaw(raw any) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return value.Integer(i)
		}
		d, _ := decimal.NewFromString(v.String())
		return value.Decimal_(d)
	case string:
		return value.String(v)
	case []any:
		items := make([]value.Value, len(v))
		for i, item := range v {
			items[i] = fromRaw(item)
		}
		return value.List(items)
	case map[string]any:
		// encoding/json doesn't preserve key order; sort for a
		// deterministic, reproducible key listing in diagnostics.
		keys := make([]string, 0, len(v))
		m := make(map[string]value.Value, len(v))
		for k, val := range v {
			keys = append(keys, k)
			m[k] = fromRaw(val)
		}
		sortStrings(keys)
		return value.NewMap(keys, m)
	default:
		return value.Null()
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
