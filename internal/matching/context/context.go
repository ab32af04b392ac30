// Package context implements the MatchingContext resolver: given a
// lookup path, it selects the best-matching RuleList from a Category
// and reports whether a rule is defined (exactly or as a prefix) for
// that path.
package context

import (
	"sort"

	"github.com/pact-foundation/pact-go-match/internal/matching/path"
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
)

// DiffConfig controls whether keys present in actual but absent from
// expected are tolerated during structural map comparison.
type DiffConfig int

const (
	AllowUnexpectedKeys DiffConfig = iota
	NoUnexpectedKeys
)

// MatchingContext is the per-message, immutable evaluation state: one
// rule Category plus a DiffConfig. It is built once per message
// comparison and never mutated.
type MatchingContext struct {
	Category   *rules.Category
	DiffConfig DiffConfig

	parsed    map[string]path.Path
	sortedKeys []string
}

// New builds a MatchingContext over the given category and diff
// config, pre-parsing every rule path once so repeated lookups in a
// single tree walk don't re-parse path strings.
func New(category *rules.Category, diff DiffConfig) *MatchingContext {
	if category == nil {
		category = rules.NewCategory("")
	}
	ctx := &MatchingContext{
		Category:   category,
		DiffConfig: diff,
		parsed:     make(map[string]path.Path, len(category.Rules)),
	}
	for k := range category.Rules {
		ctx.parsed[k] = path.Parse(k)
		ctx.sortedKeys = append(ctx.sortedKeys, k)
	}
	// Deterministic tie-break: lexicographically greatest path string
	// wins among equal-weight candidates (see SPEC_FULL.md §3).
	sort.Sort(sort.Reverse(sort.StringSlice(ctx.sortedKeys)))
	return ctx
}

// SelectBestMatcher implements spec §4.1's rule-selection algorithm:
// it computes the weight of every rule path against p and returns the
// RuleList of the highest-scoring one, with Cascaded set according to
// whether that rule path is a strict prefix of p. ok is false if no
// rule path matches at all (weight.Matched == 0 for every candidate).
func (ctx *MatchingContext) SelectBestMatcher(p path.Path) (rl rules.RuleList, ok bool) {
	var bestKey string
	var bestWeight path.Weight
	found := false

	for _, key := range ctx.sortedKeys {
		rp := ctx.parsed[key]
		w := path.WeightOf(rp, p)
		if w.Matched == 0 {
			continue
		}
		if !found || bestWeight.Less(w) {
			bestWeight = w
			bestKey = key
			found = true
		}
	}

	if !found {
		return rules.RuleList{}, false
	}

	rl = ctx.Category.Rules[bestKey]
	rl.Cascaded = path.IsStrictPrefix(ctx.parsed[bestKey], p)
	return rl, true
}

// MatcherIsDefined reports whether any rule path matches p exactly or
// as a prefix. This is not the same as "SelectBestMatcher returned a
// non-empty list" — a category may hold an empty RuleList for a path,
// which signals "defined but opaque".
func (ctx *MatchingContext) MatcherIsDefined(p path.Path) bool {
	for _, key := range ctx.sortedKeys {
		if path.Matches(ctx.parsed[key], p) {
			return true
		}
	}
	return false
}

// SubContext builds a MatchingContext scoped to an ArrayContains
// variant's sub-category, inheriting the parent's DiffConfig.
func (ctx *MatchingContext) SubContext(sub *rules.Category) *MatchingContext {
	return New(sub, ctx.DiffConfig)
}
