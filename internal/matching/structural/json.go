package structural

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pact-foundation/pact-go-match/internal/matching/context"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/path"
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
	"github.com/pact-foundation/pact-go-match/internal/matching/scalar"
	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

// CompareJSON walks expected and actual in parallel starting at p
// (normally path.Root_()), dispatching to rule-driven comparison
// where a matcher is defined and to the default structural rules
// otherwise, per spec §4.3.
func CompareJSON(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	if ctx.MatcherIsDefined(p) {
		rl, _ := ctx.SelectBestMatcher(p)
		if rl.IsEmpty() {
			return []httppart.Mismatch{httppart.Body_(p.String(), "", "",
				fmt.Sprintf("No matcher found for path '%s'", p.String()))}
		}
		return compareWithRules(ctx, p, expected, actual, rl)
	}
	return compareDefault(ctx, p, expected, actual)
}

func compareWithRules(ctx *context.MatchingContext, p path.Path, expected, actual value.Value, rl rules.RuleList) []httppart.Mismatch {
	for _, r := range rl.Rules {
		if r.Kind == rules.ArrayContainsKind {
			return compareArrayContains(ctx, p, actual, r.Variants)
		}
	}

	hasValues := false
	isTypeFamily := false
	for _, r := range rl.Rules {
		if r.Kind == rules.Values {
			hasValues = true
		}
		if r.Kind == rules.Type || r.Kind == rules.MinType || r.Kind == rules.MaxType || r.Kind == rules.MinMaxType {
			isTypeFamily = true
		}
	}

	if hasValues && expected.Kind == value.KindMap && actual.Kind == value.KindMap {
		return compareValuesMap(ctx, p, expected, actual)
	}

	var out []httppart.Mismatch
	if ok, msgs := matchValuesCombine(expected, actual, rl); !ok {
		for _, m := range msgs {
			out = append(out, httppart.Body_(p.String(), expected.Display(), actual.Display(), m))
		}
	}

	switch {
	case expected.Kind == value.KindMap && actual.Kind == value.KindMap:
		out = append(out, compareMapChildren(ctx, p, expected, actual)...)
	case expected.Kind == value.KindList && actual.Kind == value.KindList && isTypeFamily:
		out = append(out, compareListChildrenUnderType(ctx, p, expected, actual)...)
	case expected.Kind == value.KindList && actual.Kind == value.KindList:
		out = append(out, compareListChildrenLockstep(ctx, p, expected, actual)...)
	}

	return out
}

// matchValuesCombine evaluates every rule in rl against (expected,
// actual) and combines per rl.Logic: AND requires all to pass, OR
// requires any to pass. On failure the message set is the union of
// every failing rule's message (spec §4.2).
func matchValuesCombine(expected, actual value.Value, rl rules.RuleList) (bool, []string) {
	var failures []string
	anyPass := false
	for _, r := range rl.Rules {
		ok, msg := scalar.Matches(expected, actual, r, rl.Cascaded)
		if ok {
			anyPass = true
		} else {
			failures = append(failures, msg)
		}
	}
	if rl.Logic == rules.OR {
		if anyPass {
			return true, nil
		}
		return false, failures
	}
	// AND
	if len(failures) == 0 {
		return true, nil
	}
	return false, failures
}

func compareDefault(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	if expected.Kind != actual.Kind {
		return []httppart.Mismatch{httppart.Body_(p.String(), expected.Display(), actual.Display(),
			fmt.Sprintf("Type mismatch: Expected %s %s but received %s %s",
				expected.Kind, expected.Display(), actual.Kind, actual.Display()))}
	}

	switch expected.Kind {
	case value.KindMap:
		return compareMaps(ctx, p, expected, actual)
	case value.KindList:
		return compareLists(ctx, p, expected, actual)
	default:
		ok, msg := scalar.Matches(expected, actual, rules.NewEquality(), false)
		if !ok {
			return []httppart.Mismatch{httppart.Body_(p.String(), expected.Display(), actual.Display(), msg)}
		}
		return nil
	}
}

func compareMaps(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	var out []httppart.Mismatch

	if len(expected.Keys) == 0 && ctx.DiffConfig == context.NoUnexpectedKeys && len(actual.Keys) > 0 {
		return append(out, httppart.Body_(p.String(), "{}", actual.Display(),
			fmt.Sprintf("Expected an empty Map but received %s", describeMap(actual))))
	}

	if ctx.DiffConfig == context.NoUnexpectedKeys {
		if msg, ok := extraKeysMismatch(expected, actual); ok {
			out = append(out, httppart.Body_(p.String(), expected.Display(), actual.Display(), msg))
		}
	}

	return append(out, compareMapChildren(ctx, p, expected, actual)...)
}

// compareMapChildren walks every expected key's value against the
// actual map. A key missing from actual is always reported — unlike
// unexpected/extra keys, whether a required key is present is not
// something AllowUnexpectedKeys relaxes (mirrors header.go/query.go,
// which have no AllowUnexpectedKeys escape hatch for missing keys).
func compareMapChildren(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	var out []httppart.Mismatch
	for _, key := range expected.Keys {
		av, present := actual.Map[key]
		if !present {
			out = append(out, httppart.Body_(p.PushField(key).String(), expected.Map[key].Display(), "",
				fmt.Sprintf("Expected %s to have key '%s' but it was missing", describeMap(actual), key)))
			continue
		}
		out = append(out, CompareJSON(ctx, p.PushField(key), expected.Map[key], av)...)
	}
	return out
}

// extraKeysMismatch reports actual keys absent from expected; only
// called under NoUnexpectedKeys, where extra keys aren't tolerated.
func extraKeysMismatch(expected, actual value.Value) (string, bool) {
	expectedSet := make(map[string]bool, len(expected.Keys))
	for _, k := range expected.Keys {
		expectedSet[k] = true
	}

	var extra []string
	for _, k := range actual.Keys {
		if !expectedSet[k] {
			extra = append(extra, k)
		}
	}

	if len(extra) == 0 {
		return "", false
	}
	return fmt.Sprintf("Expected a Map with keys %s but received one with keys %s",
		strings.Join(sortedCopy(expected.Keys), ", "), strings.Join(sortedCopy(actual.Keys), ", ")), true
}

func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}

func describeMap(v value.Value) string {
	return fmt.Sprintf("{%s}", strings.Join(sortedCopy(v.Keys), ", "))
}

func compareLists(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	out := compareListChildrenLockstep(ctx, p, expected, actual)
	if len(expected.List) != len(actual.List) {
		out = append(out, httppart.Body_(p.String(), expected.Display(), actual.Display(),
			fmt.Sprintf("Expected a List with %d elements but received %d elements", len(expected.List), len(actual.List))))
	}
	return out
}

func compareListChildrenLockstep(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	var out []httppart.Mismatch
	n := len(expected.List)
	if len(actual.List) < n {
		n = len(actual.List)
	}
	for i := 0; i < n; i++ {
		out = append(out, CompareJSON(ctx, p.PushIndex(i), expected.List[i], actual.List[i])...)
	}
	return out
}

// compareListChildrenUnderType recurses using expected's first
// element as the template broadcast against every actual element:
// under EachLike-style Type-family matching, expected carries one
// exemplar while actual may carry any number of elements (length
// already checked by the MinType/MaxType scalar rule).
func compareListChildrenUnderType(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	if len(expected.List) == 0 {
		return nil
	}
	template := expected.List[0]
	var out []httppart.Mismatch
	for i, av := range actual.List {
		out = append(out, CompareJSON(ctx, p.PushIndex(i), template, av)...)
	}
	return out
}

// compareValuesMap implements the Values matcher on maps (spec §4.3):
// ignore keys, require every value in actual to match some value in
// expected using the cascaded sub-rules. Actual keys present in
// expected are compared against their counterpart; actual keys with
// no counterpart fall back to expected's first value as a template.
func compareValuesMap(ctx *context.MatchingContext, p path.Path, expected, actual value.Value) []httppart.Mismatch {
	var template value.Value
	haveTemplate := false
	if len(expected.Keys) > 0 {
		template = expected.Map[expected.Keys[0]]
		haveTemplate = true
	}

	var out []httppart.Mismatch
	for _, key := range actual.Keys {
		ev, present := expected.Map[key]
		if !present {
			if !haveTemplate {
				continue
			}
			ev = template
		}
		out = append(out, CompareJSON(ctx, p.PushField(key), ev, actual.Map[key])...)
	}
	return out
}

// compareArrayContains implements spec §4.3's ArrayContains combinator:
// every variant must be found somewhere in actual (order-independent,
// spec §8 property 7); a variant with no matching actual element is
// reported once, by index.
func compareArrayContains(ctx *context.MatchingContext, p path.Path, actual value.Value, variants []rules.ArrayContainsVariant) []httppart.Mismatch {
	var out []httppart.Mismatch
	if actual.Kind != value.KindList {
		return append(out, httppart.Body_(p.String(), "List", actual.Display(),
			fmt.Sprintf("Type mismatch: Expected %s %s but received %s %s",
				value.KindList, "[...]", actual.Kind, actual.Display())))
	}

	for _, variant := range variants {
		subCtx := ctx
		if variant.Rules != nil {
			subCtx = ctx.SubContext(variant.Rules)
		}

		found := false
		for _, av := range actual.List {
			if len(CompareJSON(subCtx, path.Root_(), variant.Expected, av)) == 0 {
				found = true
				break
			}
		}
		if !found {
			out = append(out, httppart.Body_(p.String(), variant.Expected.Display(), actual.Display(),
				fmt.Sprintf("Variant at index %d (%s) was not found in the actual list", variant.Index, variant.Expected.Display())))
		}
	}
	return out
}
