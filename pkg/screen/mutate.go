package screen

// Append adds child as the last child of parent, detaching it from any
// previous parent first. Appending a fragment moves its children instead.
func Append(parent, child *Node) {
	if child.kind == KindFragment {
		for _, c := range child.takeChildren() {
			parent.children = append(parent.children, c)
			c.parent = parent
		}
		return
	}
	Remove(child)
	parent.children = append(parent.children, child)
	child.parent = parent
}

// InsertAfter places node immediately after anchor under anchor's parent.
// Inserting a fragment places its children there, in order. It is a no-op when
// anchor is detached.
func InsertAfter(anchor, node *Node) {
	parent := anchor.parent
	if parent == nil {
		return
	}
	var nodes []*Node
	if node.kind == KindFragment {
		nodes = node.takeChildren()
	} else {
		if node == anchor {
			return
		}
		Remove(node)
		nodes = []*Node{node}
	}
	if len(nodes) == 0 {
		return
	}
	at := parent.indexOf(anchor) + 1
	tail := append([]*Node(nil), parent.children[at:]...)
	parent.children = append(append(parent.children[:at], nodes...), tail...)
	for _, c := range nodes {
		c.parent = parent
	}
}

// Remove detaches node from its parent. Detached nodes are left alone.
func Remove(node *Node) {
	parent := node.parent
	if parent == nil {
		return
	}
	if i := parent.indexOf(node); i >= 0 {
		parent.children = append(parent.children[:i], parent.children[i+1:]...)
	}
	node.parent = nil
}

func (n *Node) takeChildren() []*Node {
	out := n.children
	n.children = nil
	for _, c := range out {
		c.parent = nil
	}
	return out
}

// Tree is the default mutation adapter backed by the package functions.
type Tree struct{}

func (Tree) Append(parent, child *Node) { Append(parent, child) }
func (Tree) InsertAfter(anchor, node *Node) { InsertAfter(anchor, node) }
func (Tree) Remove(node *Node) { Remove(node) }
