package structural

import (
	"bytes"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/pact-foundation/pact-go-match/internal/matching/value"
)

// DecodeXML parses raw XML bytes into the engine's Value sum type per
// spec §4.4: element identity is the qualified name, attributes are a
// map at path "$...@attr", text content is a scalar leaf at path
// "$...#text". Repeated child elements become a List value so the
// existing JSON structural-compare recursion (CompareJSON) can walk
// an XML document unmodified.
func DecodeXML(data []byte) (value.Value, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return value.Value{}, err
	}
	root := xmlquery.FindOne(doc, "/*")
	if root == nil {
		return value.NewMap(nil, map[string]value.Value{}), nil
	}
	return elementValue(root), nil
}

func elementValue(n *xmlquery.Node) value.Value {
	childGroups := make(map[string][]value.Value)
	var order []string

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		name := qualifiedName(c)
		if _, seen := childGroups[name]; !seen {
			order = append(order, name)
		}
		childGroups[name] = append(childGroups[name], elementValue(c))
	}

	keys := make([]string, 0, len(order)+2)
	m := make(map[string]value.Value, len(order)+2)

	for _, name := range order {
		vals := childGroups[name]
		keys = append(keys, name)
		if len(vals) == 1 {
			m[name] = vals[0]
		} else {
			m[name] = value.List(vals)
		}
	}

	if attrs := attributeMap(n); len(attrs.Keys) > 0 {
		keys = append(keys, "@attr")
		m["@attr"] = attrs
	}

	if text := directText(n); len(order) == 0 || text != "" {
		keys = append(keys, "#text")
		m["#text"] = value.String(text)
	}

	return value.NewMap(keys, m)
}

func qualifiedName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

func attributeMap(n *xmlquery.Node) value.Value {
	keys := make([]string, 0, len(n.Attr))
	m := make(map[string]value.Value, len(n.Attr))
	for _, a := range n.Attr {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + a.Name.Local
		}
		keys = append(keys, name)
		m[name] = value.String(a.Value)
	}
	return value.NewMap(keys, m)
}

func directText(n *xmlquery.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
