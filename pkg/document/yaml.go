package document

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

// YAMLDecoder decodes YAML documents into nested Go data.
// goccy/go-yaml is used under the hood.
type YAMLDecoder struct{}

func (YAMLDecoder) Decode(b []byte) (any, error) {
	var data any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// GoccyYAMLFinder obtains YAML nodes using $-rooted path expressions of
// https://github.com/goccy/go-yaml.
type GoccyYAMLFinder struct{}

func (GoccyYAMLFinder) Find(expr string, b []byte) (any, error) {
	yamlPath, err := yaml.PathString(expr)
	if err != nil {
		return nil, err
	}

	var result any
	if err := yamlPath.Read(bytes.NewReader(b), &result); err != nil {
		return nil, err
	}

	return result, nil
}
