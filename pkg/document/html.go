package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
)

// AntchfxHTMLFinder obtains HTML nodes using XPath expressions of
// https://github.com/antchfx/htmlquery. The found node resolves to the
// trimmed text of its first child; with many matching nodes the first
// one wins.
type AntchfxHTMLFinder struct{}

func (AntchfxHTMLFinder) Find(expr string, b []byte) (any, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	nodes, err := htmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("could not find %s in given HTML bytes", expr)
	}

	return strings.TrimSpace(nodes[0].FirstChild.Data), nil
}
