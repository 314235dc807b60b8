// Package data provides the reactive data tree that dynamic text binds to.
//
// A Node holds named values and named child nodes. Resolve walks a dotted
// path through both the data tree and a parallel subscriber Tree, and Wire
// connects a value slot to the subscriber list so that Set notifies it.
package data

import (
	"sort"
)

// Node is a reactive data object.
//
// Node is NOT thread-safe. It must only be accessed from the UI thread.
type Node struct {
	values   map[string]any
	children map[string]*Node
	watchers map[string][]*Subscribers
}

// NewNode creates an empty data node.
func NewNode() *Node {
	return &Node{}
}

// Get returns the value stored under name.
func (n *Node) Get(name string) (any, bool) {
	v, ok := n.values[name]
	return v, ok
}

// Set stores value under name and notifies every subscriber list wired to it.
func (n *Node) Set(name string, value any) {
	if n.values == nil {
		n.values = make(map[string]any)
	}
	n.values[name] = value
	for _, subs := range n.watchers[name] {
		subs.Notify(value)
	}
}

// Child returns the child node called name, creating it if needed.
func (n *Node) Child(name string) *Node {
	if c, ok := n.children[name]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := NewNode()
	n.children[name] = c
	return c
}

// Lookup walks path without creating nodes.
func (n *Node) Lookup(path []string) (*Node, bool) {
	current := n
	for _, seg := range path {
		next, ok := current.children[seg]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Update writes values recursively: nested maps update child nodes, anything
// else is Set on this node.
func (n *Node) Update(values map[string]any) {
	for _, k := range sortedKeys(values) {
		if nested, ok := values[k].(map[string]any); ok {
			n.Child(k).Update(nested)
			continue
		}
		n.Set(k, values[k])
	}
}

// Snapshot returns the values and children of n as nested maps.
func (n *Node) Snapshot() map[string]any {
	out := make(map[string]any, len(n.values)+len(n.children))
	for k, v := range n.values {
		out[k] = v
	}
	for k, c := range n.children {
		out[k] = c.Snapshot()
	}
	return out
}

// Wired reports how many subscriber lists are wired to name.
func (n *Node) Wired(name string) int {
	return len(n.watchers[name])
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
