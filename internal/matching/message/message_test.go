package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
)

func samplePart() httppart.HttpPart {
	return httppart.HttpPart{
		Method: "GET",
		Path:   "/widgets/1",
		Query:  map[string][]string{"q": {"1"}},
		Headers: map[string][]string{
			"Content-Type": {"application/json"},
		},
		Body: httppart.PresentBody([]byte(`{"id":1}`), "application/json"),
		Status: 200,
	}
}

func TestMatchRequestReflexivity(t *testing.T) {
	p := samplePart()
	mismatches := MatchRequest(Rules{}, p, p)
	assert.Empty(t, mismatches)
}

func TestMatchResponseReflexivity(t *testing.T) {
	p := samplePart()
	mismatches := MatchResponse(Rules{}, p, p)
	assert.Empty(t, mismatches)
}

func TestMatchRequestAccumulatesAllMismatches(t *testing.T) {
	expected := httppart.HttpPart{
		Method: "GET",
		Path:   "/a",
		Body:   httppart.PresentBody([]byte(`{"a":1}`), "application/json"),
	}
	actual := httppart.HttpPart{
		Method: "POST",
		Path:   "/b",
		Body:   httppart.PresentBody([]byte(`{"a":2}`), "application/json"),
	}

	mismatches := MatchRequest(Rules{}, expected, actual)

	var kinds []httppart.MismatchKind
	for _, m := range mismatches {
		kinds = append(kinds, m.Kind)
	}
	assert.Contains(t, kinds, httppart.MethodMismatch)
	assert.Contains(t, kinds, httppart.PathMismatch)
	assert.Contains(t, kinds, httppart.BodyMismatch)
}

func TestMatchResponseDefaultsAllowUnexpectedKeysOnBody(t *testing.T) {
	expected := httppart.HttpPart{
		Status: 200,
		Body:   httppart.PresentBody([]byte(`{"a":1}`), "application/json"),
	}
	actual := httppart.HttpPart{
		Status: 200,
		Body:   httppart.PresentBody([]byte(`{"a":1,"extra":true}`), "application/json"),
	}

	mismatches := MatchResponse(Rules{}, expected, actual)
	assert.Empty(t, mismatches)
}

func TestMatchRequestDefaultsNoUnexpectedKeysOnBody(t *testing.T) {
	expected := httppart.HttpPart{
		Method: "GET",
		Path:   "/a",
		Body:   httppart.PresentBody([]byte(`{"a":1}`), "application/json"),
	}
	actual := httppart.HttpPart{
		Method: "GET",
		Path:   "/a",
		Body:   httppart.PresentBody([]byte(`{"a":1,"extra":true}`), "application/json"),
	}

	mismatches := MatchRequest(Rules{}, expected, actual)
	assert.NotEmpty(t, mismatches)
}
