package scalar

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

func TestEqualityPasses(t *testing.T) {
	ok, _ := Matches(value.Integer(2), value.Integer(2), rules.NewEquality(), false)
	assert.True(t, ok)
}

func TestEqualityFailsMessage(t *testing.T) {
	ok, msg := Matches(value.Integer(2), value.Integer(3), rules.NewEquality(), false)
	assert.False(t, ok)
	assert.Contains(t, msg, "Expected '2' to be equal to '3'")
}

func TestEqualityIntegerDecimalNeverCoerce(t *testing.T) {
	ok, _ := Matches(value.Integer(2), value.Decimal_(decimal.NewFromInt(2)), rules.NewEquality(), false)
	assert.False(t, ok)
}

func TestTypeMismatchBetweenIntegerAndDecimal(t *testing.T) {
	ok, _ := Matches(value.Integer(2), value.Decimal_(decimal.NewFromFloat(2.0)), rules.NewType(), false)
	assert.False(t, ok)
}

func TestMinTypeRespectsCascade(t *testing.T) {
	expected := value.List([]value.Value{value.Integer(1)})
	actual := value.List([]value.Value{})

	ok, _ := Matches(expected, actual, rules.NewMinType(2), false)
	assert.False(t, ok)

	ok, _ = Matches(expected, actual, rules.NewMinType(2), true)
	assert.True(t, ok, "cascaded MinType is equivalent to Type only")
}

func TestRegexInvalidPatternMessage(t *testing.T) {
	ok, msg := Matches(value.String(""), value.String("abc"), rules.NewRegex("("), false)
	assert.False(t, ok)
	assert.Contains(t, msg, "is not a valid regular expression")
}

func TestRegexMatches(t *testing.T) {
	ok, _ := Matches(value.String(""), value.String("2020-01-01"), rules.NewRegex(`\d{4}-\d{2}-\d{2}`), false)
	assert.True(t, ok)
}

func TestBooleanAcceptsStringified(t *testing.T) {
	ok, _ := Matches(value.Bool(true), value.String("true"), rules.NewBoolean(), false)
	assert.True(t, ok)
}

func TestStatusCodeClientError(t *testing.T) {
	ok, _ := Matches(value.Integer(0), value.Integer(404), rules.NewStatusCode(rules.ClientError), false)
	assert.True(t, ok)

	ok, _ = Matches(value.Integer(0), value.Integer(200), rules.NewStatusCode(rules.ClientError), false)
	assert.False(t, ok)
}

func TestDateMatchesDefaultFormat(t *testing.T) {
	ok, _ := Matches(value.String(""), value.String("2020-01-01"), rules.NewDate(""), false)
	assert.True(t, ok)
}
