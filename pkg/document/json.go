package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/antchfx/jsonquery"
	"github.com/oliveagle/jsonpath"
	"github.com/pawelWritesCode/qjson"
	"github.com/tidwall/gjson"
)

// JSONDecoder decodes JSON documents into nested Go data.
// tidwall/gjson is used under the hood.
type JSONDecoder struct{}

func (JSONDecoder) Decode(b []byte) (any, error) {
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("document is not valid JSON")
	}

	return gjson.ParseBytes(b).Value(), nil
}

// GJSONFinder obtains JSON nodes using https://github.com/tidwall/gjson expressions.
type GJSONFinder struct{}

func (GJSONFinder) Find(expr string, b []byte) (any, error) {
	if len(expr) == 0 {
		return nil, fmt.Errorf("provided empty expression")
	}

	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("document is not valid JSON")
	}

	result := gjson.GetBytes(b, expr)
	if !result.Exists() {
		return nil, fmt.Errorf("could not find node, using expression %s", expr)
	}

	return result.Value(), nil
}

// OliveagleJSONFinder obtains JSON nodes using $-rooted expressions of
// https://github.com/oliveagle/jsonpath.
type OliveagleJSONFinder struct{}

func (OliveagleJSONFinder) Find(expr string, b []byte) (any, error) {
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	return jsonpath.JsonPathLookup(data, expr)
}

// QJSONFinder obtains JSON nodes using expressions of
// https://github.com/pawelWritesCode/qjson.
type QJSONFinder struct{}

func (QJSONFinder) Find(expr string, b []byte) (any, error) {
	return qjson.Resolve(expr, b)
}

// AntchfxJSONFinder obtains JSON nodes using XPath expressions of
// https://github.com/antchfx/jsonquery.
type AntchfxJSONFinder struct{}

func (AntchfxJSONFinder) Find(expr string, b []byte) (any, error) {
	if len(expr) == 0 {
		return nil, fmt.Errorf("provided empty expression")
	}

	doc, err := jsonquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("document is not valid JSON")
	}

	nodes, err := jsonquery.QueryAll(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("could not find node, using expression %s, err: %w", expr, err)
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("could not find node, using expression %s", expr)
	}

	if len(nodes) == 1 {
		return nodes[0].Value(), nil
	}

	results := make([]any, 0, len(nodes))
	for _, node := range nodes {
		results = append(results, node.Value())
	}

	return results, nil
}

// DynamicJSONFinder obtains JSON nodes from given expression, determining
// whether the expression matches tidwall/gjson, oliveagle/jsonpath or
// antchfx/jsonquery syntax.
type DynamicJSONFinder struct{}

func (DynamicJSONFinder) Find(expr string, b []byte) (any, error) {
	if len(expr) == 0 {
		return nil, fmt.Errorf("provided empty expression")
	}

	switch expr[0:1] {
	case "$":
		return OliveagleJSONFinder{}.Find(expr, b)
	case "/":
		return AntchfxJSONFinder{}.Find(expr, b)
	}

	return GJSONFinder{}.Find(expr, b)
}
