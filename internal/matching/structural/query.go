package structural

import (
	"fmt"

	"github.com/pact-foundation/pact-go-match/internal/matching/context"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/path"
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
	"github.com/pact-foundation/pact-go-match/internal/matching/scalar"
	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

// CompareQuery implements spec §4.5's query matcher over an ordered
// multi-map: for each expected key, compare value lists element-wise
// using any rule defined at "$.query.<key>", or Equality; missing
// expected keys and length mismatches are reported; extra actual
// keys are reported too (the query category has no AllowUnexpectedKeys
// escape hatch in the original contract model).
func CompareQuery(ctx *context.MatchingContext, expected, actual map[string][]string) []httppart.Mismatch {
	var out []httppart.Mismatch

	for key, expectedValues := range expected {
		actualValues, present := actual[key]
		if !present {
			out = append(out, httppart.Query(key, fmt.Sprintf("%v", expectedValues), "",
				fmt.Sprintf("Expected query parameter '%s' but was missing", key)))
			continue
		}

		p := path.Parse("$.query." + key)
		rule := rules.NewEquality()
		if ctx.MatcherIsDefined(p) {
			if rl, ok := ctx.SelectBestMatcher(p); ok && len(rl.Rules) > 0 {
				rule = rl.Rules[0]
			}
		}

		if len(expectedValues) != len(actualValues) {
			out = append(out, httppart.Query(key, fmt.Sprintf("%v", expectedValues), fmt.Sprintf("%v", actualValues),
				fmt.Sprintf("Expected query parameter '%s' with %d value(s) but received %d value(s)",
					key, len(expectedValues), len(actualValues))))
		}

		n := len(expectedValues)
		if len(actualValues) < n {
			n = len(actualValues)
		}
		for i := 0; i < n; i++ {
			ok, msg := scalar.Matches(value.String(expectedValues[i]), value.String(actualValues[i]), rule, false)
			if !ok {
				out = append(out, httppart.Query(key, expectedValues[i], actualValues[i], msg))
			}
		}
	}

	for key := range actual {
		if _, present := expected[key]; !present {
			out = append(out, httppart.Query(key, "", fmt.Sprintf("%v", actual[key]),
				fmt.Sprintf("Unexpected query parameter '%s' received", key)))
		}
	}

	return out
}
