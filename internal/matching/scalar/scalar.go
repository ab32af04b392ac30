// Package scalar implements the scalar matcher cross-product: a total
// function matching a single MatchingRule between an expected and
// actual scalar value, per spec §4.2. The cross-product table there
// is normative; this file realises it as one switch dispatching on
// (rule.Kind, expected.Kind, actual.Kind).
package scalar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

// Matches evaluates rule between expected and actual, returning ok
// and, on failure, a human-readable diagnostic message. cascaded
// carries the context's cascade flag, which turns MinType/MaxType/
// MinMaxType into effectively-unconstrained Type checks (spec §4.2).
func Matches(expected, actual value.Value, rule rules.MatchingRule, cascaded bool) (bool, string) {
	switch rule.Kind {
	case rules.Equality, rules.Values:
		return matchEquality(expected, actual)
	case rules.Type:
		return matchType(expected, actual)
	case rules.MinType:
		return matchMinMaxType(expected, actual, rule.Min, -1, cascaded)
	case rules.MaxType:
		return matchMinMaxType(expected, actual, -1, rule.Max, cascaded)
	case rules.MinMaxType:
		return matchMinMaxType(expected, actual, rule.Min, rule.Max, cascaded)
	case rules.Regex:
		return matchRegexRule(actual, rule.Pattern)
	case rules.Include:
		return matchInclude(actual, rule.Substr)
	case rules.Number:
		return matchNumberKind(expected, actual, numberAny)
	case rules.Integer:
		return matchNumberKind(expected, actual, numberInteger)
	case rules.Decimal:
		return matchNumberKind(expected, actual, numberDecimal)
	case rules.Boolean:
		return matchBoolean(actual)
	case rules.Null:
		return matchNull(actual)
	case rules.Date:
		return matchTemporalRule("date", actual, rule.Format)
	case rules.Time:
		return matchTemporalRule("time", actual, rule.Format)
	case rules.Timestamp:
		return matchTemporalRule("timestamp", actual, rule.Format)
	case rules.ContentType:
		return matchContentType(rule.Media, actual.String, actual.Bytes)
	case rules.StatusCode:
		return matchStatusCode(actual, rule.Class, rule.ExplicitSet)
	default:
		return false, fmt.Sprintf("Unable to match %s using %v", actual.Display(), rule.Kind)
	}
}

func stringify(v value.Value) string {
	return v.Display()
}

func matchEquality(expected, actual value.Value) (bool, string) {
	if expected.Kind == value.KindInteger && actual.Kind == value.KindDecimal ||
		expected.Kind == value.KindDecimal && actual.Kind == value.KindInteger {
		return false, fmt.Sprintf("Expected '%s' to be equal to '%s'", stringify(expected), stringify(actual))
	}
	if expected.Kind != actual.Kind {
		return false, fmt.Sprintf("Expected '%s' to be equal to '%s'", stringify(expected), stringify(actual))
	}
	ok := false
	switch expected.Kind {
	case value.KindNull:
		ok = true
	case value.KindBool:
		ok = expected.Bool == actual.Bool
	case value.KindInteger:
		ok = expected.Integer == actual.Integer
	case value.KindDecimal:
		ok = expected.Decimal.Equal(actual.Decimal)
	case value.KindString:
		ok = expected.String == actual.String
	case value.KindBytes:
		ok = string(expected.Bytes) == string(actual.Bytes)
	default:
		ok = stringify(expected) == stringify(actual)
	}
	if !ok {
		return false, fmt.Sprintf("Expected '%s' to be equal to '%s'", stringify(expected), stringify(actual))
	}
	return true, ""
}

func matchType(expected, actual value.Value) (bool, string) {
	if expected.Kind == value.KindInteger && actual.Kind == value.KindDecimal ||
		expected.Kind == value.KindDecimal && actual.Kind == value.KindInteger {
		return false, fmt.Sprintf("Expected '%s' (%s) to be the same type as '%s' (%s)",
			stringify(actual), actual.Kind, stringify(expected), expected.Kind)
	}
	if expected.Kind != actual.Kind {
		return false, fmt.Sprintf("Expected '%s' (%s) to be the same type as '%s' (%s)",
			stringify(actual), actual.Kind, stringify(expected), expected.Kind)
	}
	return true, ""
}

func matchMinMaxType(expected, actual value.Value, min, max int, cascaded bool) (bool, string) {
	if ok, msg := matchType(expected, actual); !ok {
		return ok, msg
	}
	if cascaded {
		// A parent already matched this node by Type; the count
		// constraint is implied there and must not double-count here.
		return true, ""
	}
	if actual.Kind != value.KindList {
		return true, ""
	}
	n := len(actual.List)
	if min >= 0 && n < min {
		return false, fmt.Sprintf("Expected '%d' items but received '%d' items", min, n)
	}
	if max >= 0 && n > max {
		return false, fmt.Sprintf("Expected at most '%d' items but received '%d' items", max, n)
	}
	return true, ""
}

func matchRegexRule(actual value.Value, pattern string) (bool, string) {
	s := stringify(actual)
	matched, err := matchRegex(pattern, s)
	if err != nil {
		return false, fmt.Sprintf("'%s' is not a valid regular expression - %s", pattern, err.Error())
	}
	if !matched {
		return false, fmt.Sprintf("Expected '%s' to match '%s'", s, pattern)
	}
	return true, ""
}

func matchInclude(actual value.Value, substr string) (bool, string) {
	s := stringify(actual)
	if !strings.Contains(s, substr) {
		return false, fmt.Sprintf("Expected '%s' to include '%s'", s, substr)
	}
	return true, ""
}

type numberKind int

const (
	numberAny numberKind = iota
	numberInteger
	numberDecimal
)

func matchNumberKind(expected, actual value.Value, kind numberKind) (bool, string) {
	av := actual
	if actual.Kind == value.KindString {
		parsed, ok := parseNumberString(actual.String)
		if !ok {
			return false, fmt.Sprintf("Expected '%s' to be a number", actual.String)
		}
		av = parsed
	}

	switch kind {
	case numberInteger:
		if av.Kind != value.KindInteger {
			return false, fmt.Sprintf("Expected '%s' to be an integer", stringify(av))
		}
	case numberDecimal:
		if av.Kind != value.KindDecimal {
			return false, fmt.Sprintf("Expected '%s' to be a decimal number", stringify(av))
		}
	default:
		if av.Kind != value.KindInteger && av.Kind != value.KindDecimal {
			return false, fmt.Sprintf("Expected '%s' to be a number", stringify(av))
		}
	}
	return true, ""
}

func parseNumberString(s string) (value.Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Integer(i), true
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return value.Decimal_(d), true
	}
	return value.Value{}, false
}

func matchBoolean(actual value.Value) (bool, string) {
	switch actual.Kind {
	case value.KindBool:
		return true, ""
	case value.KindString:
		if actual.String == "true" || actual.String == "false" {
			return true, ""
		}
	}
	return false, fmt.Sprintf("Expected '%s' to be a boolean", stringify(actual))
}

func matchNull(actual value.Value) (bool, string) {
	if actual.Kind == value.KindNull {
		return true, ""
	}
	return false, fmt.Sprintf("Expected '%s' to be null", stringify(actual))
}

func matchTemporalRule(kind string, actual value.Value, format string) (bool, string) {
	s := stringify(actual)
	if format == "" {
		format = defaultFormat(kind)
	}
	return matchTemporal(kind, s, format)
}

func defaultFormat(kind string) string {
	switch kind {
	case "date":
		return "yyyy-MM-dd"
	case "time":
		return "'T'HH:mm:ss"
	default:
		return "yyyy-MM-dd'T'HH:mm:ssZZZ"
	}
}

func matchStatusCode(actual value.Value, class rules.StatusClass, explicit []int) (bool, string) {
	code := int(actual.Integer)

	if class == rules.StatusCodes {
		for _, c := range explicit {
			if c == code {
				return true, ""
			}
		}
		return false, fmt.Sprintf("Expected status code '%d' to be one of '%v'", code, explicit)
	}

	var ok bool
	var label string
	switch class {
	case rules.Information:
		ok, label = code >= 100 && code <= 199, "an Informational (100-199)"
	case rules.Success:
		ok, label = code >= 200 && code <= 299, "a Success (200-299)"
	case rules.Redirect:
		ok, label = code >= 300 && code <= 399, "a Redirect (300-399)"
	case rules.ClientError:
		ok, label = code >= 400 && code <= 499, "a Client Error (400-499)"
	case rules.ServerError:
		ok, label = code >= 500 && code <= 599, "a Server Error (500-599)"
	case rules.NonError:
		ok, label = code < 400, "a Non-Error (< 400)"
	case rules.Error:
		ok, label = code >= 400, "an Error (>= 400)"
	default:
		ok, label = true, ""
	}

	if !ok {
		return false, fmt.Sprintf("Expected status code '%d' to be %s status code", code, label)
	}
	return true, ""
}
