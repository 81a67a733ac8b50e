package pred

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path"

	"github.com/qri-io/jsonschema"
	jschema "github.com/xeipuuv/gojsonschema"
)

// JSONSchema returns a predicate satisfied when the value marshals to a
// JSON document accepted by the given JSON schema string.
// xeipuuv/gojsonschema is used under the hood; it covers drafts v4, v6 and v7.
func JSONSchema(name, jsonSchema string) Predicate {
	return Named(name, func(v any) bool {
		doc, err := json.Marshal(v)
		if err != nil {
			return false
		}

		result, err := jschema.Validate(jschema.NewStringLoader(jsonSchema), jschema.NewBytesLoader(doc))
		if err != nil {
			return false
		}

		return result.Valid()
	})
}

// JSONSchemaQI is like JSONSchema with qri-io/jsonschema under the hood.
// According to library documentation it covers drafts 7 & 2019-09.
func JSONSchemaQI(name, jsonSchema string) Predicate {
	return Named(name, func(v any) bool {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(jsonSchema), rs); err != nil {
			return false
		}

		doc, err := json.Marshal(v)
		if err != nil {
			return false
		}

		errs, err := rs.ValidateBytes(context.Background(), doc)

		return err == nil && len(errs) == 0
	})
}

// JSONSchemaReference is like JSONSchema with the schema passed by
// reference: source may be URL or relative/full path to a JSON schema on
// user OS. Relative paths are resolved against schemasDir.
func JSONSchemaReference(name, source, schemasDir string) Predicate {
	return Named(name, func(v any) bool {
		src, err := resolveSource(schemasDir, source)
		if err != nil {
			return false
		}

		doc, err := json.Marshal(v)
		if err != nil {
			return false
		}

		result, err := jschema.Validate(jschema.NewReferenceLoader(src), jschema.NewBytesLoader(doc))
		if err != nil {
			return false
		}

		return result.Valid()
	})
}

// resolveSource accepts rawSource, validates it and returns valid schema source.
// Available sources are: file system os path and URL.
func resolveSource(schemasDir, rawSource string) (string, error) {
	if rawSource == "" {
		return "", errors.New("provided rawSource should not be empty string")
	}

	if u, err := url.ParseRequestURI(rawSource); err == nil && u.Scheme != "" && u.Host != "" {
		return rawSource, nil
	}

	pth := rawSource
	if !path.IsAbs(rawSource) {
		pth = path.Clean(path.Join(schemasDir, rawSource))
	}

	if _, err := os.Stat(pth); err != nil {
		return "", errors.New(rawSource + " isn't valid path to any resource on your OS, nor valid URL")
	}

	return "file://" + pth, nil
}
