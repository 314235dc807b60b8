// Package screen provides the in-memory screen tree the kernel renders into,
// along with the primitive mutations the kernel is allowed to perform on it.
//
// Nodes form an ordinary parent/children tree. A fragment is a staging
// container: appending or inserting a fragment moves its children and leaves
// the fragment empty.
package screen

// Kind identifies what a Node represents.
type Kind int

const (
	// KindElement is a tagged element with attributes and children.
	KindElement Kind = iota
	// KindText is a text leaf.
	KindText
	// KindComment is an invisible annotated leaf, used for anchors.
	KindComment
	// KindFragment is a detached staging container.
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Node is one node of the screen tree.
type Node struct {
	kind     Kind
	tag      string
	attrs    map[string]string
	text     string
	parent   *Node
	children []*Node
}

// NewElement creates a detached element node. attrs is copied.
func NewElement(tag string, attrs map[string]string) *Node {
	n := &Node{kind: KindElement, tag: tag}
	if len(attrs) > 0 {
		n.attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			n.attrs[k] = v
		}
	}
	return n
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{kind: KindText, text: text}
}

// NewComment creates a detached comment node.
func NewComment(text string) *Node {
	return &Node{kind: KindComment, text: text}
}

// NewFragment creates an empty fragment.
func NewFragment() *Node {
	return &Node{kind: KindFragment}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag, or "" for non-element nodes.
func (n *Node) Tag() string { return n.tag }

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute on an element node.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Text returns the content of a text or comment node.
func (n *Node) Text() string { return n.text }

// SetText replaces the content of a text or comment node.
func (n *Node) SetText(text string) { n.text = text }

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// NextSibling returns the node following n under the same parent.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// TextContent concatenates the text of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.kind == KindText {
		return n.text
	}
	var out []byte
	for _, c := range n.children {
		if c.kind == KindComment {
			continue
		}
		out = append(out, c.TextContent()...)
	}
	return string(out)
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
