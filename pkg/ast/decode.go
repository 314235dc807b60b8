package ast

import (
	"fmt"
	"os"

	"github.com/go-drift/anchor/pkg/errors"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the document format major version this package reads.
const SupportedMajor = "v1"

// Document is the on-disk form of an AST.
type Document struct {
	// Format is an optional semantic version ("v1.0.0").
	Format string `yaml:"format,omitempty"`
	// AST is the generic tree, decoded with FromRaw.
	AST any `yaml:"ast"`
}

// ReadFile loads and decodes an AST document from path.
func ReadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.AnchorError{Op: "ast.ReadFile", Kind: errors.KindParsing, Err: err}
	}
	return DecodeDocument(data)
}

// DecodeDocument decodes a YAML or JSON AST document.
func DecodeDocument(data []byte) (*Node, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.AnchorError{Op: "ast.DecodeDocument", Kind: errors.KindParsing, Err: err}
	}
	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	if doc.AST == nil {
		return nil, &errors.StructureError{Op: "ast.DecodeDocument", Detail: "document has no ast"}
	}
	return FromRaw(doc.AST)
}

func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	if !semver.IsValid(format) {
		return &errors.AnchorError{
			Op:   "ast.DecodeDocument",
			Kind: errors.KindVersion,
			Err:  fmt.Errorf("invalid format version %q", format),
		}
	}
	if major := semver.Major(format); major != SupportedMajor {
		return &errors.AnchorError{
			Op:   "ast.DecodeDocument",
			Kind: errors.KindVersion,
			Err:  fmt.Errorf("unsupported format %s, want %s.x", major, SupportedMajor),
		}
	}
	return nil
}

// FromRaw converts a generic tree, as produced by yaml or json decoding, into
// a Node. The head of the root sequence must be a tag mapping.
func FromRaw(v any) (*Node, error) {
	seq, ok := v.([]any)
	if !ok || len(seq) == 0 {
		return nil, shapeError(v, "root must be a non-empty sequence")
	}
	head, ok := asMap(seq[0])
	if !ok {
		return nil, shapeError(seq[0], "element head must be a tag mapping")
	}
	tag, err := decodeTag(head)
	if err != nil {
		return nil, err
	}

	node := &Node{Tag: tag, Children: make([]any, 0, len(seq)-1)}
	for _, raw := range seq[1:] {
		child, err := decodeChild(raw)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func decodeChild(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []any:
		if len(v) == 0 {
			return nil, shapeError(v, "empty sequence")
		}
		if _, ok := asMap(v[0]); ok {
			return FromRaw(v)
		}
		if _, ok := v[0].(string); ok {
			return decodeBinding(v)
		}
		return nil, shapeError(v[0], "unknown sequence head")
	default:
		if m, ok := asMap(raw); ok {
			return decodeMountPoint(m)
		}
		return nil, shapeError(raw, "unknown node type")
	}
}

func decodeBinding(seq []any) (Binding, error) {
	segments := make([]string, len(seq))
	for i, s := range seq {
		str, ok := s.(string)
		if !ok {
			return Binding{}, shapeError(s, "binding segments must be strings")
		}
		segments[i] = str
	}
	return Bind(segments...), nil
}

func decodeMountPoint(m map[string]any) (MountPoint, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return MountPoint{}, shapeError(m, "mounting point has no name")
	}
	typ, _ := m["type"].(string)
	if typ == "node" {
		// historical spelling of single
		typ = string(Single)
	}
	return MountPoint{Name: name, Type: MountType(typ)}, nil
}

func decodeTag(m map[string]any) (Tag, error) {
	name, _ := m["tag"].(string)
	if name == "" {
		return Tag{}, shapeError(m, "tag mapping has no tag name")
	}
	tag := Tag{Name: name}
	if raw, ok := asMap(m["attrs"]); ok {
		tag.Attrs = make(map[string]string, len(raw))
		for k, v := range raw {
			tag.Attrs[k] = fmt.Sprint(v)
		}
	}
	return tag, nil
}

// asMap accepts both yaml.v3 and encoding/json mapping shapes.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func shapeError(v any, detail string) error {
	return &errors.StructureError{Op: "ast.FromRaw", Shape: fmt.Sprintf("%T", v), Detail: detail}
}
