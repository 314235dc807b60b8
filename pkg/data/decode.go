package data

import (
	"os"

	"github.com/go-drift/anchor/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML or JSON mapping into values suitable for Update.
func DecodeYAML(b []byte) (map[string]any, error) {
	var values map[string]any
	if err := yaml.Unmarshal(b, &values); err != nil {
		return nil, &errors.AnchorError{Op: "data.DecodeYAML", Kind: errors.KindParsing, Err: err}
	}
	return values, nil
}

// ReadFile loads a data document from path.
func ReadFile(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.AnchorError{Op: "data.ReadFile", Kind: errors.KindParsing, Err: err}
	}
	return DecodeYAML(b)
}
