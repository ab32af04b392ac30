// Package rules implements the closed set of matching rule variants
// and the per-path rule lists/categories that a MatchingContext
// resolves against.
package rules

import "github.com/pact-foundation/pact-go-match/internal/matching/value"

// Kind discriminates the MatchingRule variants of the tagged union.
type Kind int

const (
	Equality Kind = iota
	Type
	MinType
	MaxType
	MinMaxType
	Regex
	Include
	Number
	Integer
	Decimal
	Boolean
	Null
	Date
	Time
	Timestamp
	ContentType
	StatusCode
	ArrayContainsKind
	Values
)

// StatusClass is the parameter of a StatusCode rule.
type StatusClass int

const (
	Information StatusClass = iota
	Success
	Redirect
	ClientError
	ServerError
	NonError
	Error
	StatusCodes
)

// ArrayContainsVariant is one entry of an ArrayContains rule: actual
// must contain at least one element, at any position, matching the
// sub-category rules for the variant indexed by Index.
type ArrayContainsVariant struct {
	Index      int
	Expected   value.Value
	Rules      *Category
	Generators map[string]any
}

// MatchingRule is one rule variant with its parameters. Only the
// fields relevant to Kind are meaningful; zero values elsewhere.
type MatchingRule struct {
	Kind Kind

	// MinType / MaxType / MinMaxType
	Min int
	Max int

	// Regex
	Pattern string

	// Include
	Substr string

	// Date / Time / Timestamp
	Format string

	// ContentType
	Media string

	// StatusCode
	Class       StatusClass
	ExplicitSet []int

	// ArrayContains
	Variants []ArrayContainsVariant
}

func NewEquality() MatchingRule { return MatchingRule{Kind: Equality} }
func NewType() MatchingRule { return MatchingRule{Kind: Type} }
func NewMinType(n int) MatchingRule { return MatchingRule{Kind: MinType, Min: n} }
func NewMaxType(n int) MatchingRule { return MatchingRule{Kind: MaxType, Max: n} }
func NewMinMaxType(n, m int) MatchingRule { return MatchingRule{Kind: MinMaxType, Min: n, Max: m} }
func NewRegex(pattern string) MatchingRule { return MatchingRule{Kind: Regex, Pattern: pattern} }
func NewInclude(s string) MatchingRule { return MatchingRule{Kind: Include, Substr: s} }
func NewNumber() MatchingRule { return MatchingRule{Kind: Number} }
func NewInteger() MatchingRule { return MatchingRule{Kind: Integer} }
func NewDecimal() MatchingRule { return MatchingRule{Kind: Decimal} }
func NewBoolean() MatchingRule { return MatchingRule{Kind: Boolean} }
func NewNull() MatchingRule { return MatchingRule{Kind: Null} }
func NewDate(format string) MatchingRule { return MatchingRule{Kind: Date, Format: format} }
func NewTime(format string) MatchingRule { return MatchingRule{Kind: Time, Format: format} }
func NewTimestamp(format string) MatchingRule { return MatchingRule{Kind: Timestamp, Format: format} }
func NewContentType(media string) MatchingRule { return MatchingRule{Kind: ContentType, Media: media} }
func NewStatusCode(class StatusClass, explicit ...int) MatchingRule {
	return MatchingRule{Kind: StatusCode, Class: class, ExplicitSet: explicit}
}
func NewArrayContains(variants ...ArrayContainsVariant) MatchingRule {
	return MatchingRule{Kind: ArrayContainsKind, Variants: variants}
}
func NewValues() MatchingRule { return MatchingRule{Kind: Values} }

// Logic is the combinator applied across a RuleList's rules.
type Logic int

const (
	AND Logic = iota
	OR
)

// RuleList is the list of rules selected for one path, plus the logic
// used to combine them and whether the selection was a cascade (the
// rule's own path is a strict prefix of the lookup path).
type RuleList struct {
	Rules    []MatchingRule
	Logic    Logic
	Cascaded bool
}

// IsEmpty reports whether the list carries no rules. An empty,
// *defined* RuleList means "defined but opaque" per spec §4.1 and is
// distinct from "no RuleList selected at all".
func (rl RuleList) IsEmpty() bool {
	return len(rl.Rules) == 0
}

// Category is a named bucket (body, header, query, path, status,
// metadata) mapping path strings to RuleLists. Each category is
// resolved independently of the others.
type Category struct {
	Name  string
	Rules map[string]RuleList
}

// NewCategory constructs an empty, named Category.
func NewCategory(name string) *Category {
	return &Category{Name: name, Rules: make(map[string]RuleList)}
}

// AddRule registers rules (combined with logic) at the given path
// string within this category.
func (c *Category) AddRule(pathStr string, logic Logic, rules ...MatchingRule) {
	c.Rules[pathStr] = RuleList{Rules: rules, Logic: logic}
}
