package v3

import (
	"github.com/pact-foundation/pact-go-match/internal/matching/path"
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
)

// Build walks a body described with the Matcher DSL and produces an
// expected JSON example alongside the rules.Category the matching
// engine's MatchingContext resolves against — the bridge between the
// consumer-facing builder (teacher's v3/matcher.go) and
// internal/matching/message's request/response orchestration.
func Build(body interface{}) (interface{}, *rules.Category) {
	cat := rules.NewCategory("body")
	example := buildValue(path.Root_(), body, cat)
	return example, cat
}

func buildValue(p path.Path, v interface{}, cat *rules.Category) interface{} {
	switch m := v.(type) {
	case Matcher:
		registerEngineRule(p, m, cat)
		return buildMatcherContents(p, m, cat)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[k] = buildValue(p.PushField(k), val, cat)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(m))
		for i, val := range m {
			out[i] = buildValue(p.PushIndex(i), val, cat)
		}
		return out
	default:
		return v
	}
}

func buildMatcherContents(p path.Path, m Matcher, cat *rules.Category) interface{} {
	switch mt := m.(type) {
	case eachLike:
		// The engine addresses EachLike's repeated elements through
		// the first-element template (structural.compareListChildrenUnderType),
		// so only one example element is emitted here regardless of Min/Max.
		// Its rules are registered under a wildcard index so they apply
		// to every actual element, not just the first.
		element := buildValue(p.Push(path.WildcardSegment()), mt.Contents, cat)
		return []interface{}{element}
	case StructMatcher:
		out := make(map[string]interface{}, len(mt))
		for k, val := range mt {
			out[k] = buildValue(p.PushField(k), val, cat)
		}
		return out
	default:
		return buildValue(p, m.GetValue(), cat)
	}
}

// registerEngineRule records the rules.MatchingRule equivalent of a
// DSL Matcher at p, so the value the builder emits is addressable by
// internal/matching/context's resolver.
func registerEngineRule(p path.Path, m Matcher, cat *rules.Category) {
	switch mt := m.(type) {
	case term:
		pattern, _ := mt.Data.Matcher.Regex.(string)
		cat.AddRule(p.String(), rules.AND, rules.NewRegex(pattern))
	case eachLike:
		if mt.Max != 0 {
			cat.AddRule(p.String(), rules.AND, rules.NewMaxType(mt.Max))
		} else {
			cat.AddRule(p.String(), rules.AND, rules.NewMinType(mt.Min))
		}
	default:
		cat.AddRule(p.String(), rules.AND, rules.NewType())
	}
}
