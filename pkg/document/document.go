// Package document validates raw JSON, YAML and XML documents against
// verity schemas.
//
// A document is decoded into nested Go data (maps, slices, scalars) and
// handed to the validation engine. Alternatively a single node may be
// selected with a path expression and validated on its own; several
// interchangeable Finder implementations cover the common JSON path
// syntaxes plus YAML paths and XPath.
package document

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/verity-go/verity"
)

// DataFormat describes format of a document.
type DataFormat string

const (
	// JSON describes JSON data format.
	JSON DataFormat = "JSON"

	// YAML describes YAML data format.
	YAML DataFormat = "YAML"

	// XML describes XML data format.
	XML DataFormat = "XML"

	// Unknown describes unrecognized data format.
	Unknown DataFormat = "unknown"
)

// Decoder describes ability to decode a raw document into nested Go data.
type Decoder interface {
	// Decode decodes b into maps, slices and scalars.
	Decode(b []byte) (any, error)
}

// Finder describes ability to obtain a node from a raw document according
// to given path expression.
type Finder interface {
	// Find obtains data from b according to given expression.
	Find(expr string, b []byte) (any, error)
}

// Detect recognizes the data format of b.
func Detect(b []byte) DataFormat {
	if isJSON(b) {
		return JSON
	}

	if isXML(b) {
		return XML
	}

	if isYAML(b) {
		return YAML
	}

	return Unknown
}

// Validate decodes b according to its detected data format and validates
// the result against schema. The second result reports document problems,
// distinct from the validation error set.
func Validate(schema any, b []byte) ([]error, error) {
	var dec Decoder
	switch Detect(b) {
	case JSON:
		dec = JSONDecoder{}
	case YAML:
		dec = YAMLDecoder{}
	case XML:
		dec = XMLDecoder{}
	default:
		return nil, fmt.Errorf("could not recognize data format of document")
	}

	data, err := dec.Decode(b)
	if err != nil {
		return nil, err
	}

	return verity.ValidationErrors(schema, data), nil
}

// ValidateAt selects the node under expr with finder f and validates it
// against schema.
func ValidateAt(f Finder, expr string, schema any, b []byte) ([]error, error) {
	node, err := f.Find(expr, b)
	if err != nil {
		return nil, err
	}

	return verity.ValidationErrors(schema, node), nil
}

func isJSON(b []byte) bool {
	var js json.RawMessage

	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]any

	return yaml.Unmarshal(b, &y) == nil
}

func isXML(b []byte) bool {
	var v any

	return xml.Unmarshal(b, &v) == nil
}
