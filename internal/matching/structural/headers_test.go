package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pact-foundation/pact-go-match/internal/matching/context"
)

func TestS7MethodCaseInsensitive(t *testing.T) {
	mismatches := CompareMethod("GET", "get")
	assert.Empty(t, mismatches)
}

func TestMethodMismatch(t *testing.T) {
	mismatches := CompareMethod("GET", "POST")
	assert.Len(t, mismatches, 1)
}

func TestS5ContentTypeParameterMismatch(t *testing.T) {
	expected := map[string][]string{"Content-Type": {"application/json; charset=utf-8"}}
	actual := map[string][]string{"content-type": {"application/json; charset=ASCII"}}

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareHeaders(ctx, expected, actual)

	assert.Len(t, mismatches, 1)
	assert.Equal(t, "Content-Type", mismatches[0].Key)
}

func TestHeaderCaseInsensitiveKeyLookup(t *testing.T) {
	expected := map[string][]string{"Content-Type": {"text/plain"}}
	actual := map[string][]string{"content-type": {"text/plain"}}

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareHeaders(ctx, expected, actual)
	assert.Empty(t, mismatches)
}

func TestHeaderCommaSplitValues(t *testing.T) {
	expected := map[string][]string{"Accept": {"a, b"}}
	actual := map[string][]string{"Accept": {"a,b"}}

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareHeaders(ctx, expected, actual)
	assert.Empty(t, mismatches)
}

func TestMissingExpectedHeaderFails(t *testing.T) {
	expected := map[string][]string{"X-Required": {"v"}}
	actual := map[string][]string{}

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareHeaders(ctx, expected, actual)
	assert.Len(t, mismatches, 1)
}

func TestQueryMissingKey(t *testing.T) {
	expected := map[string][]string{"q": {"1"}}
	actual := map[string][]string{}

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareQuery(ctx, expected, actual)
	assert.Len(t, mismatches, 1)
}

func TestQueryExtraKey(t *testing.T) {
	expected := map[string][]string{}
	actual := map[string][]string{"extra": {"1"}}

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareQuery(ctx, expected, actual)
	assert.Len(t, mismatches, 1)
	assert.Contains(t, mismatches[0].Description, "Unexpected query parameter")
}

func TestStatusEquality(t *testing.T) {
	ctx := context.New(nil, context.AllowUnexpectedKeys)
	assert.Empty(t, CompareStatus(ctx, 200, 200))
	assert.Len(t, CompareStatus(ctx, 200, 404), 1)
}

func TestPathEquality(t *testing.T) {
	ctx := context.New(nil, context.AllowUnexpectedKeys)
	assert.Empty(t, ComparePath(ctx, "/a/b", "/a/b"))
	assert.Len(t, ComparePath(ctx, "/a/b", "/a/c"), 1)
}
