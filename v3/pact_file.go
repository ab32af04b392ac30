package v3

import (
	"encoding/json"
	"fmt"
)

// ruleValue is the per-path matching rule value a Matcher serialises
// itself into, e.g. {"match": "type"} or {"match": "regex", "regex": "..."}.
type ruleValue map[string]interface{}

// matchingRule is the V2 pact-file matching-rule map: a path string
// (dollar-rooted, dot/bracket addressed) to its rule definition, the
// legacy wire shape the teacher's Matcher.MatchingRule() values are
// designed to serialise into.
type matchingRule map[string]interface{}

// pactBody is the body example plus the matching rules collected
// while walking it, ready to be embedded into a contract file's
// request/response body section.
type pactBody struct {
	Body          interface{}
	MatchingRules matchingRule
}

// pactBodyBuilder walks a body described with the Matcher DSL
// (Like/EachLike/Term/nested maps and slices) and produces the plain
// JSON example alongside a flat map of path -> matching rule.
func pactBodyBuilder(body interface{}) pactBody {
	rules := matchingRule{}
	example := recursePactValue("$.body", body, rules)
	return pactBody{Body: example, MatchingRules: rules}
}

// generatePactFile is the consumer-facing entry point; for a single
// body value it is equivalent to pactBodyBuilder.
func generatePactFile(body interface{}) pactBody {
	return pactBodyBuilder(body)
}

func recursePactValue(path string, v interface{}, rules matchingRule) interface{} {
	switch m := v.(type) {
	case Matcher:
		rules[path] = map[string]interface{}(m.MatchingRule())
		return recurseMatcherContents(path, m, rules)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[k] = recursePactValue(path+"."+k, val, rules)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(m))
		for i, val := range m {
			out[i] = recursePactValue(fmt.Sprintf("%s[%d]", path, i), val, rules)
		}
		return out
	default:
		return v
	}
}

func recurseMatcherContents(path string, m Matcher, rules matchingRule) interface{} {
	switch mt := m.(type) {
	case eachLike:
		n := mt.Min
		if mt.Max != 0 {
			n = mt.Max
		}
		if n <= 0 {
			n = 1
		}
		elementPath := path + "[*]"
		element := recursePactValue(elementPath, mt.Contents, rules)
		out := make([]interface{}, n)
		for i := range out {
			out[i] = element
		}
		return out
	case StructMatcher:
		out := make(map[string]interface{}, len(mt))
		for k, val := range mt {
			out[k] = recursePactValue(path+"."+k, val, rules)
		}
		return out
	default:
		return recursePactValue(path, m.GetValue(), rules)
	}
}

// formatJSON normalises a JSON document string to a canonical,
// whitespace-free form so structurally-equal bodies compare equal
// regardless of source formatting.
func formatJSON(s string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// formatJSONObject marshals v to JSON and runs it through formatJSON.
func formatJSONObject(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return formatJSON(string(b))
}
