// Package ast defines the declarative tree consumed by the rendering kernel.
//
// A Node pairs a Tag with an ordered list of children. Each child is one of:
//
//   - string: static text
//   - *Node: a nested element
//   - Binding: dynamic text bound to a data path
//   - MountPoint: a named slot for child components
//
// Any other child value is a structural defect and is rejected at build time.
package ast

// Tag describes the element a Node materializes into. The kernel treats it as
// opaque and hands it to the leaf factory.
type Tag struct {
	Name  string
	Attrs map[string]string
}

// Node is one element of the tree.
type Node struct {
	Tag      Tag
	Children []any
}

// New returns a Node for tag with the given children.
func New(tag string, children ...any) *Node {
	return &Node{Tag: Tag{Name: tag}, Children: children}
}

// WithAttrs sets static attributes on the node's tag and returns the node.
func (n *Node) WithAttrs(attrs map[string]string) *Node {
	n.Tag.Attrs = attrs
	return n
}

// Binding is a dynamic text descriptor: the text tracks Name on the data node
// found by walking Path from the data root.
type Binding struct {
	Path []string
	Name string
}

// Bind builds a Binding from path segments followed by the binding name,
// mirroring the document form [seg, seg, ..., name].
func Bind(segments ...string) Binding {
	if len(segments) == 0 {
		return Binding{}
	}
	path := make([]string, len(segments)-1)
	copy(path, segments[:len(segments)-1])
	return Binding{Path: path, Name: segments[len(segments)-1]}
}

// MountType selects how a mounting point holds its content.
type MountType string

const (
	// Single holds at most one component.
	Single MountType = "single"
	// List holds an ordered collection of components.
	List MountType = "list"
)

// MountPoint declares a named slot for child components.
type MountPoint struct {
	Name string
	Type MountType
}

// Slot declares a single-slot mounting point.
func Slot(name string) MountPoint {
	return MountPoint{Name: name, Type: Single}
}

// Slots declares a list mounting point.
func Slots(name string) MountPoint {
	return MountPoint{Name: name, Type: List}
}
