package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pact-foundation/pact-go-match/internal/matching/context"
	"github.com/pact-foundation/pact-go-match/internal/matching/path"
)

func TestDecodeXMLSimpleElement(t *testing.T) {
	v, err := DecodeXML([]byte(`<root id="1">hello</root>`))
	require.NoError(t, err)

	assert.Equal(t, "1", v.Map["@attr"].Map["id"].String)
	assert.Equal(t, "hello", v.Map["#text"].String)
}

func TestDecodeXMLRepeatedChildrenBecomeList(t *testing.T) {
	v, err := DecodeXML([]byte(`<root><item>a</item><item>b</item></root>`))
	require.NoError(t, err)

	items := v.Map["item"]
	require.Len(t, items.List, 2)
	assert.Equal(t, "a", items.List[0].Map["#text"].String)
	assert.Equal(t, "b", items.List[1].Map["#text"].String)
}

func TestCompareXMLMatchesStructurally(t *testing.T) {
	expected, err := DecodeXML([]byte(`<root><name>Alice</name></root>`))
	require.NoError(t, err)
	actual, err := DecodeXML([]byte(`<root><name>Alice</name></root>`))
	require.NoError(t, err)

	ctx := context.New(nil, context.AllowUnexpectedKeys)
	mismatches := CompareJSON(ctx, path.Root_(), expected, actual)
	assert.Empty(t, mismatches)
}
