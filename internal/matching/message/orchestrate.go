package message

import (
	"github.com/pact-foundation/pact-go-match/internal/matching/context"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/rules"
	"github.com/pact-foundation/pact-go-match/internal/matching/structural"
)

// Rules bundles the per-category rule sets a contract supplies for
// one interaction: body, header, query and path rules live in
// independent categories (spec §3's Category entity), status rules
// are looked up under the synthetic "$.status" path within the same
// mechanism CompareStatus already uses.
type Rules struct {
	Body   *rules.Category
	Header *rules.Category
	Query  *rules.Category
	Path   *rules.Category
	Status *rules.Category
}

// MatchRequest implements spec §4.7: runs method, path, body, query,
// headers in that order, collecting every mismatch without short-
// circuiting. Body comparison defaults to NoUnexpectedKeys.
func MatchRequest(r Rules, expected, actual httppart.HttpPart) []httppart.Mismatch {
	var out []httppart.Mismatch

	out = append(out, structural.CompareMethod(expected.Method, actual.Method)...)

	pathCtx := context.New(r.Path, context.NoUnexpectedKeys)
	out = append(out, structural.ComparePath(pathCtx, expected.Path, actual.Path)...)

	bodyCtx := context.New(r.Body, context.NoUnexpectedKeys)
	out = append(out, CompareBody(bodyCtx, expected.Body, actual.Body)...)

	queryCtx := context.New(r.Query, context.AllowUnexpectedKeys)
	out = append(out, structural.CompareQuery(queryCtx, expected.Query, actual.Query)...)

	headerCtx := context.New(r.Header, context.AllowUnexpectedKeys)
	out = append(out, structural.CompareHeaders(headerCtx, expected.Headers, actual.Headers)...)

	return out
}

// MatchResponse implements spec §4.7: runs body, status, headers in
// that order. Body comparison defaults to AllowUnexpectedKeys.
func MatchResponse(r Rules, expected, actual httppart.HttpPart) []httppart.Mismatch {
	var out []httppart.Mismatch

	bodyCtx := context.New(r.Body, context.AllowUnexpectedKeys)
	out = append(out, CompareBody(bodyCtx, expected.Body, actual.Body)...)

	statusCtx := context.New(r.Status, context.AllowUnexpectedKeys)
	out = append(out, structural.CompareStatus(statusCtx, expected.Status, actual.Status)...)

	headerCtx := context.New(r.Header, context.AllowUnexpectedKeys)
	out = append(out, structural.CompareHeaders(headerCtx, expected.Headers, actual.Headers)...)

	return out
}
