package message

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
)

// TestMatchRequestDeterminismProperty covers spec §8 property 1.
func TestMatchRequestDeterminismProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("matching is deterministic", prop.ForAll(
		func(a, b int) bool {
			expected := httppart.HttpPart{
				Method: "GET",
				Path:   "/x",
				Body:   httppart.PresentBody([]byte(`{"n":`+itoa(a)+`}`), "application/json"),
			}
			actual := httppart.HttpPart{
				Method: "GET",
				Path:   "/x",
				Body:   httppart.PresentBody([]byte(`{"n":`+itoa(b)+`}`), "application/json"),
			}

			first := MatchRequest(Rules{}, expected, actual)
			second := MatchRequest(Rules{}, expected, actual)
			return httppart.EqualSets(first, second) && len(first) == len(second)
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
	))

	properties.TestingRun(t)
}

// TestDiffConfigMonotonicityProperty covers spec §8 property 4:
// switching AllowUnexpectedKeys -> NoUnexpectedKeys may introduce new
// mismatches but never removes any that were already present.
func TestDiffConfigMonotonicityProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("stricter diff config is monotonic", prop.ForAll(
		func(extraKey string) bool {
			if extraKey == "" || extraKey == "a" {
				return true
			}
			expected := httppart.HttpPart{
				Method: "GET",
				Path:   "/x",
				Body:   httppart.PresentBody([]byte(`{"a":1}`), "application/json"),
			}
			actual := httppart.HttpPart{
				Method: "GET",
				Path:   "/x",
				Body:   httppart.PresentBody([]byte(`{"a":1,"`+extraKey+`":2}`), "application/json"),
			}

			allow := MatchResponse(Rules{}, expected, actual)
			strict := MatchRequest(Rules{}, expected, actual)

			return len(strict) >= len(allow)
		},
		gen.RegexMatch(`[b-z]{1,6}`),
	))

	properties.TestingRun(t)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
