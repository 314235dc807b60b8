package screen

import (
	"html"
	"sort"
	"strings"
)

// Render serializes the subtree rooted at n as markup. Attributes are sorted
// so the output is deterministic.
func Render(n *Node) string {
	var sb strings.Builder
	render(&sb, n)
	return sb.String()
}

func render(sb *strings.Builder, n *Node) {
	switch n.kind {
	case KindText:
		sb.WriteString(html.EscapeString(n.text))
	case KindComment:
		sb.WriteString("<!--")
		sb.WriteString(n.text)
		sb.WriteString("-->")
	case KindFragment:
		for _, c := range n.children {
			render(sb, c)
		}
	default:
		sb.WriteByte('<')
		sb.WriteString(n.tag)
		for _, k := range sortedKeys(n.attrs) {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(n.attrs[k]))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		for _, c := range n.children {
			render(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(n.tag)
		sb.WriteByte('>')
	}
}

// SnapshotNode is a serializable view of a screen node.
type SnapshotNode struct {
	Kind     string            `yaml:"kind"`
	Tag      string            `yaml:"tag,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []*SnapshotNode   `yaml:"children,omitempty"`
}

// Snapshot captures the subtree rooted at n.
func Snapshot(n *Node) *SnapshotNode {
	snap := &SnapshotNode{
		Kind: n.kind.String(),
		Tag:  n.tag,
		Text: n.text,
	}
	if len(n.attrs) > 0 {
		snap.Attrs = make(map[string]string, len(n.attrs))
		for k, v := range n.attrs {
			snap.Attrs[k] = v
		}
	}
	for _, c := range n.children {
		snap.Children = append(snap.Children, Snapshot(c))
	}
	return snap
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
