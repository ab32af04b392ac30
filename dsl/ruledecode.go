package dsl

import (
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
)

// DecodeMatchingRules converts a pact document's matchingRules map —
// the flat "$.body[*].colour" -> {"match":"regex","regex":"..."}
// wire shape used by the V2 pact specification fixtures this package
// already consumes (see broker_test.go) — into the engine's
// rules.Category. Unrecognized descriptors degrade to an empty Type
// rule rather than erroring, matching Path.Parse's lenient posture:
// matching-rule documents are operator-controlled contract data, not
// attacker input to validate defensively.
func DecodeMatchingRules(name string, wire map[string]interface{}) *rules.Category {
	cat := rules.NewCategory(name)
	for path, raw := range wire {
		descriptor, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		cat.AddRule(path, rules.AND, decodeDescriptor(descriptor))
	}
	return cat
}

func decodeDescriptor(d map[string]interface{}) rules.MatchingRule {
	match, _ := d["match"].(string)
	min, hasMin := intField(d, "min")
	max, hasMax := intField(d, "max")

	switch match {
	case "regex":
		pattern, _ := d["regex"].(string)
		return rules.NewRegex(pattern)
	case "equality":
		return rules.NewEquality()
	case "include":
		substr, _ := d["value"].(string)
		return rules.NewInclude(substr)
	case "number":
		return rules.NewNumber()
	case "integer":
		return rules.NewInteger()
	case "decimal":
		return rules.NewDecimal()
	case "boolean":
		return rules.NewBoolean()
	case "null":
		return rules.NewNull()
	case "date":
		format, _ := d["date"].(string)
		return rules.NewDate(format)
	case "time":
		format, _ := d["time"].(string)
		return rules.NewTime(format)
	case "timestamp":
		format, _ := d["timestamp"].(string)
		return rules.NewTimestamp(format)
	case "contentType":
		media, _ := d["value"].(string)
		return rules.NewContentType(media)
	case "type", "":
		switch {
		case hasMin && hasMax:
			return rules.NewMinMaxType(min, max)
		case hasMin:
			return rules.NewMinType(min)
		case hasMax:
			return rules.NewMaxType(max)
		default:
			return rules.NewType()
		}
	default:
		return rules.NewType()
	}
}

func intField(d map[string]interface{}, key string) (int, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
