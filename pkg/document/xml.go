package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// XMLDecoder decodes XML documents into nested map data: child elements
// become keys, repeated elements become slices, attributes become
// "@"-prefixed keys and mixed text content a "#text" key.
// antchfx/xmlquery is used under the hood.
type XMLDecoder struct{}

func (XMLDecoder) Decode(b []byte) (any, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return map[string]any{n.Data: elementValue(n)}, nil
		}
	}

	return nil, fmt.Errorf("document has no root element")
}

func elementValue(n *xmlquery.Node) any {
	children := map[string][]any{}
	var order []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}

		if _, ok := children[c.Data]; !ok {
			order = append(order, c.Data)
		}
		children[c.Data] = append(children[c.Data], elementValue(c))
	}

	out := map[string]any{}
	for _, a := range n.Attr {
		out["@"+a.Name.Local] = a.Value
	}

	if len(children) == 0 {
		text := strings.TrimSpace(n.InnerText())
		if len(out) == 0 {
			return text
		}

		out["#text"] = text

		return out
	}

	for _, name := range order {
		values := children[name]
		if len(values) == 1 {
			out[name] = values[0]
			continue
		}

		out[name] = values
	}

	return out
}

// AntchfxXMLFinder obtains XML nodes using XPath expressions of
// https://github.com/antchfx/xmlquery. Found elements are decoded the
// same way XMLDecoder decodes them.
type AntchfxXMLFinder struct{}

func (AntchfxXMLFinder) Find(expr string, b []byte) (any, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	nodes, err := xmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("could not find %s in given XML bytes", expr)
	}

	if len(nodes) == 1 {
		return elementValue(nodes[0]), nil
	}

	results := make([]any, 0, len(nodes))
	for _, node := range nodes {
		results = append(results, elementValue(node))
	}

	return results, nil
}
