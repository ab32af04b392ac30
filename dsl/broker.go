// Package dsl adapts the teacher's mock Pact Broker HAL test harness
// into a fixture source for exercising the matching engine end to
// end: FetchPact retrieves a pact document from a broker-shaped HTTP
// endpoint and decodes its interactions into the engine's HttpPart
// and rule-category types (spec §6's external interfaces), without
// implementing a production broker client (explicitly out of scope,
// spec §1).
package dsl

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pact-foundation/pact-go-match/internal/matcherror"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/message"
)

// Interaction is one request/response pair as stored in a pact
// document, in the V2 matchingRules wire shape the mock broker
// fixtures already speak.
type Interaction struct {
	Description string          `json:"description"`
	Request     InteractionPart `json:"request"`
	Response    InteractionPart `json:"response"`
}

// InteractionPart is the shared shape of a request or response side
// of an Interaction.
type InteractionPart struct {
	Method        string                 `json:"method,omitempty"`
	Path          string                 `json:"path,omitempty"`
	Status        int                    `json:"status,omitempty"`
	Headers       map[string]string      `json:"headers,omitempty"`
	Body          json.RawMessage        `json:"body,omitempty"`
	MatchingRules map[string]interface{} `json:"matchingRules,omitempty"`
}

// Pact is the subset of a pact document FetchPact needs: the
// consumer/provider names and the interactions list.
type Pact struct {
	Consumer     struct{ Name string } `json:"consumer"`
	Provider     struct{ Name string } `json:"provider"`
	Interactions []Interaction         `json:"interactions"`
}

// FetchPact retrieves and decodes a pact document from a broker-
// shaped endpoint (such as setupMockBroker's HAL fixtures). user/pass
// are sent as HTTP basic auth when non-empty.
func FetchPact(url, user, pass string) (*Pact, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if user != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("broker fetch failed")
		return nil, matcherror.Wrap(matcherror.ErrBrokerUnavailable, "request to pact broker failed", err, url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, matcherror.Wrap(matcherror.ErrBrokerUnavailable, "reading pact broker response body failed", err, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, matcherror.New(matcherror.ErrBrokerUnavailable,
			"pact broker returned a non-200 status", map[string]any{"status": resp.StatusCode, "url": url})
	}

	var pact Pact
	if err := json.Unmarshal(body, &pact); err != nil {
		return nil, matcherror.Wrap(matcherror.ErrPactDecode, "decoding pact document failed", err, url)
	}

	log.Debug().Str("consumer", pact.Consumer.Name).Str("provider", pact.Provider.Name).
		Int("interactions", len(pact.Interactions)).Msg("fetched pact document")

	return &pact, nil
}

// ToHttpPart converts an InteractionPart into the engine's HttpPart,
// assuming a JSON body when one is present.
func (p InteractionPart) ToHttpPart() httppart.HttpPart {
	headers := make(map[string][]string, len(p.Headers))
	for k, v := range p.Headers {
		headers[k] = []string{v}
	}

	body := httppart.MissingBody()
	if len(p.Body) > 0 {
		body = httppart.PresentBody([]byte(p.Body), "application/json")
	}

	return httppart.HttpPart{
		Method:  p.Method,
		Path:    p.Path,
		Status:  p.Status,
		Headers: headers,
		Body:    body,
	}
}

// MatchingRules decodes the interaction part's matchingRules map into
// the engine's per-category rule set, keyed the way message.Rules
// expects: rules filed under "$.body..." feed Body (re-rooted at "$",
// where the body walk starts), "$.header..." feed Header,
// "$.query..." feed Query, "$.path" feeds Path.
func (p InteractionPart) MatchingRules() message.Rules {
	body := map[string]interface{}{}
	header := map[string]interface{}{}
	query := map[string]interface{}{}
	pathRules := map[string]interface{}{}

	for key, descriptor := range p.MatchingRules {
		switch {
		case strings.HasPrefix(key, "$.body"):
			body["$"+strings.TrimPrefix(key, "$.body")] = descriptor
		case strings.HasPrefix(key, "$.header"):
			header[key] = descriptor
		case strings.HasPrefix(key, "$.query"):
			query[key] = descriptor
		case key == "$.path":
			pathRules[key] = descriptor
		}
	}

	return message.Rules{
		Body:   DecodeMatchingRules("body", body),
		Header: DecodeMatchingRules("header", header),
		Query:  DecodeMatchingRules("query", query),
		Path:   DecodeMatchingRules("path", pathRules),
	}
}
