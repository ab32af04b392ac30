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

// ComparePath implements spec §4.5's path matcher: use the rule
// defined at "$.path" if any, else Equality.
func ComparePath(ctx *context.MatchingContext, expected, actual string) []httppart.Mismatch {
	p := path.Parse("$.path")

	rule := rules.NewEquality()
	if ctx.MatcherIsDefined(p) {
		if rl, ok := ctx.SelectBestMatcher(p); ok && len(rl.Rules) > 0 {
			rule = rl.Rules[0]
		}
	}

	ok, msg := scalar.Matches(value.String(expected), value.String(actual), rule, false)
	if ok {
		return nil
	}
	if msg == "" {
		msg = fmt.Sprintf("Expected path '%s' but received '%s'", expected, actual)
	}
	return []httppart.Mismatch{httppart.PathMismatchOf(expected, actual, msg)}
}
