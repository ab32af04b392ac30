package structural

import (
	"bytes"

	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
)

// CompareText implements the plain-text fallback body matcher (spec
// §4.6): byte equality at the root path, with no structural descent.
func CompareText(expected, actual []byte) []httppart.Mismatch {
	if bytes.Equal(expected, actual) {
		return nil
	}
	return []httppart.Mismatch{httppart.Body_("$", string(expected), string(actual),
		"Expected body to match exactly")}
}
