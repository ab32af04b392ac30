package structural

import (
	"fmt"
	"strings"

	"github.com/pact-foundation/pact-go-match/internal/matching/context"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/path"
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
	"github.com/pact-foundation/pact-go-match/internal/matching/scalar"
	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

// CompareHeaders implements spec §4.5's header matcher: case-
// insensitive key lookup; values are comma-split and whitespace-
// trimmed before comparison; Content-Type gets special media-type +
// parameter-map handling; missing expected headers fail, extra actual
// headers are allowed.
//
// Header values containing a comma inside a quoted section are split
// naively (spec §9 Open Question #3); this is a known, documented
// limitation rather than a defect.
func CompareHeaders(ctx *context.MatchingContext, expected, actual map[string][]string) []httppart.Mismatch {
	var out []httppart.Mismatch

	for key, expectedValues := range expected {
		actualValues, present := findHeader(actual, key)
		if !present {
			out = append(out, httppart.Header(key, fmt.Sprintf("%v", expectedValues), "",
				fmt.Sprintf("Expected header '%s' but was missing", key)))
			continue
		}

		if strings.EqualFold(key, "content-type") {
			out = append(out, compareContentTypeHeader(key, expectedValues, actualValues)...)
			continue
		}

		expectedTokens := splitHeaderTokens(expectedValues)
		actualTokens := splitHeaderTokens(actualValues)

		p := path.Parse("$.headers." + key)
		rule := rules.NewEquality()
		if ctx.MatcherIsDefined(p) {
			if rl, ok := ctx.SelectBestMatcher(p); ok && len(rl.Rules) > 0 {
				rule = rl.Rules[0]
			}
		}

		if len(expectedTokens) != len(actualTokens) {
			out = append(out, httppart.Header(key, strings.Join(expectedTokens, ", "), strings.Join(actualTokens, ", "),
				fmt.Sprintf("Expected header '%s' to have %d value(s) but received %d value(s)",
					key, len(expectedTokens), len(actualTokens))))
			continue
		}
		for i := range expectedTokens {
			ok, msg := scalar.Matches(value.String(expectedTokens[i]), value.String(actualTokens[i]), rule, false)
			if !ok {
				out = append(out, httppart.Header(key, expectedTokens[i], actualTokens[i], msg))
			}
		}
	}

	return out
}

func findHeader(headers map[string][]string, key string) ([]string, bool) {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func splitHeaderTokens(values []string) []string {
	var tokens []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			tokens = append(tokens, strings.TrimSpace(part))
		}
	}
	return tokens
}

// compareContentTypeHeader splits each side on ';', compares the base
// media type exactly, then compares the parameter sub-map for
// equality on shared keys (spec §4.5).
func compareContentTypeHeader(key string, expectedValues, actualValues []string) []httppart.Mismatch {
	expectedMedia, expectedParams := parseContentType(joinFirst(expectedValues))
	actualMedia, actualParams := parseContentType(joinFirst(actualValues))

	if expectedMedia != actualMedia {
		return []httppart.Mismatch{httppart.Header(key, expectedMedia, actualMedia,
			fmt.Sprintf("Expected content type '%s' but received '%s'", expectedMedia, actualMedia))}
	}

	for pk, pv := range expectedParams {
		if av, ok := actualParams[pk]; ok && av != pv {
			return []httppart.Mismatch{httppart.Header(key, pv, av,
				fmt.Sprintf("Expected content type parameter '%s' to be '%s' but was '%s'", pk, pv, av))}
		}
	}
	return nil
}

func joinFirst(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func parseContentType(s string) (media string, params map[string]string) {
	params = make(map[string]string)
	parts := strings.Split(s, ";")
	if len(parts) == 0 {
		return "", params
	}
	media = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 {
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return media, params
}
