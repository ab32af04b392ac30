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

// CompareStatus implements spec §4.5's status matcher: integer
// equality, or a class test when a StatusCode rule is defined at
// "$.status".
func CompareStatus(ctx *context.MatchingContext, expected, actual int) []httppart.Mismatch {
	p := path.Parse("$.status")

	var rule rules.MatchingRule
	if ctx.MatcherIsDefined(p) {
		rl, ok := ctx.SelectBestMatcher(p)
		if ok && len(rl.Rules) > 0 {
			rule = rl.Rules[0]
		} else {
			rule = rules.NewEquality()
		}
	} else {
		rule = rules.NewEquality()
	}

	ok, msg := scalar.Matches(value.Integer(int64(expected)), value.Integer(int64(actual)), rule, false)
	if ok {
		return nil
	}
	if msg == "" {
		msg = fmt.Sprintf("Expected status code '%d' but received '%d'", expected, actual)
	}
	return []httppart.Mismatch{httppart.Status(fmt.Sprintf("%d", expected), fmt.Sprintf("%d", actual), msg)}
}
