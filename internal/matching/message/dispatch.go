// Package message orchestrates the structural matchers for a full
// request or response comparison, choosing the body matcher by media
// type and combining every step's mismatches into one list (spec
// §4.6, §4.7).
package message

import (
	"regexp"

	"github.com/pact-foundation/pact-go-match/internal/matching/context"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/path"
	"github.com/pact-foundation/pact-go-match/internal/matching/structural"
)

// jsonMediaType and xmlMediaType form the fixed, first-match media-type dispatch table
// from spec §4.6/§6: "application/*json" selects the JSON matcher,
// "application/*xml" selects the XML matcher, anything else falls
// back to plain-text byte equality.
var (
	jsonMediaType = regexp.MustCompile(`application/.*json`)
	xmlMediaType  = regexp.MustCompile(`application/.*xml`)
)

// CompareBody implements the body presence-state combinator table
// (spec §4.6) and dispatches to the appropriate structural matcher
// when both sides have a body present.
func CompareBody(ctx *context.MatchingContext, expected, actual httppart.Body) []httppart.Mismatch {
	switch expected.State {
	case httppart.Missing:
		return nil
	case httppart.NullBody:
		if actual.State == httppart.Present {
			return []httppart.Mismatch{httppart.Body_("$", "null", string(actual.Bytes), "Expected empty body but received a body")}
		}
		return nil
	case httppart.Present:
		switch actual.State {
		case httppart.Missing:
			return []httppart.Mismatch{httppart.Body_("$", string(expected.Bytes), "", "Expected a body but received none")}
		case httppart.NullBody:
			return nil
		default:
			return compareBodyBytes(ctx, expected, actual)
		}
	}
	return nil
}

func compareBodyBytes(ctx *context.MatchingContext, expected, actual httppart.Body) []httppart.Mismatch {
	if expected.MediaType != "" && actual.MediaType != "" && expected.MediaType != actual.MediaType {
		return []httppart.Mismatch{httppart.BodyType(expected.MediaType, actual.MediaType,
			"Expected content type '"+expected.MediaType+"' but received '"+actual.MediaType+"'")}
	}

	switch {
	case jsonMediaType.MatchString(expected.MediaType):
		ev, eerr := structural.DecodeJSON(expected.Bytes)
		if eerr != nil {
			return []httppart.Mismatch{httppart.Body_("$", string(expected.Bytes), string(actual.Bytes),
				"Unable to parse expected body as JSON: "+eerr.Error())}
		}
		av, aerr := structural.DecodeJSON(actual.Bytes)
		if aerr != nil {
			return []httppart.Mismatch{httppart.Body_("$", string(expected.Bytes), string(actual.Bytes),
				"Unable to parse actual body as JSON: "+aerr.Error())}
		}
		return structural.CompareJSON(ctx, path.Root_(), ev, av)

	case xmlMediaType.MatchString(expected.MediaType):
		ev, eerr := structural.DecodeXML(expected.Bytes)
		if eerr != nil {
			return []httppart.Mismatch{httppart.Body_("$", string(expected.Bytes), string(actual.Bytes),
				"Unable to parse expected body as XML: "+eerr.Error())}
		}
		av, aerr := structural.DecodeXML(actual.Bytes)
		if aerr != nil {
			return []httppart.Mismatch{httppart.Body_("$", string(expected.Bytes), string(actual.Bytes),
				"Unable to parse actual body as XML: "+aerr.Error())}
		}
		return structural.CompareJSON(ctx, path.Root_(), ev, av)

	default:
		return structural.CompareText(expected.Bytes, actual.Bytes)
	}
}
