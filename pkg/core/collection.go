package core

import (
	"github.com/go-drift/anchor/pkg/screen"
)

// Collection is the ordered content of a list mounting point. Once assigned,
// it is tagged with the mounting point's anchor, and the root nodes of its
// items follow that anchor in the order of Items.
//
// Mutators on the collection currently held by a mounting point update the
// screen tree as well. On any other collection they only change membership.
//
// A collection belongs to at most one list mounting point at a time. When a
// list write is rejected partway, the items it staged before the conflict
// stay attached to a detached fragment and cannot be mounted again.
type Collection struct {
	items  []Mountable
	anchor *screen.Node
	slot   *listSlot
}

// NewCollection returns an untagged collection holding items.
func NewCollection(items ...Mountable) *Collection {
	c := &Collection{}
	c.items = append(c.items, items...)
	return c
}

func newBoundCollection(slot *listSlot) *Collection {
	return &Collection{anchor: slot.anchor, slot: slot}
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the i-th item.
func (c *Collection) At(i int) Mountable {
	return c.items[i]
}

// Items returns a copy of the items in display order.
func (c *Collection) Items() []Mountable {
	out := make([]Mountable, len(c.items))
	copy(out, c.items)
	return out
}

// Index returns the position of m, or -1.
func (c *Collection) Index(m Mountable) int {
	for i, item := range c.items {
		if sameInstance(item, m) {
			return i
		}
	}
	return -1
}

// Anchor returns the anchor the collection is tagged with, or nil.
func (c *Collection) Anchor() *screen.Node {
	return c.anchor
}

// Push appends items and, when live, mounts them after the current last item.
// It stops at the first item that is already attached; items pushed before it
// stay mounted.
func (c *Collection) Push(items ...Mountable) {
	for _, item := range items {
		if item.IsAttached() {
			if c.slot != nil {
				c.slot.b.attachmentConflict(c.slot.name)
			}
			return
		}
		if c.live() {
			after := c.anchor
			if n := len(c.items); n > 0 {
				after = c.items[n-1].RootNode()
			}
			c.slot.b.tree.InsertAfter(after, item.RootNode())
		}
		c.items = append(c.items, item)
	}
}

// Pop removes and returns the last item, or nil when empty.
func (c *Collection) Pop() Mountable {
	n := len(c.items)
	if n == 0 {
		return nil
	}
	item := c.items[n-1]
	c.Remove(item)
	return item
}

// Remove drops item from the collection and, when live, from the screen tree.
// It reports whether item was a member.
func (c *Collection) Remove(item Mountable) bool {
	if !c.forget(item) {
		return false
	}
	if c.live() {
		c.slot.b.tree.Remove(item.RootNode())
	}
	return true
}

// Clear removes every item.
func (c *Collection) Clear() {
	for len(c.items) > 0 {
		c.Pop()
	}
}

// forget drops item from membership only.
func (c *Collection) forget(item Mountable) bool {
	i := c.Index(item)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *Collection) contains(item Mountable) bool {
	return c.Index(item) >= 0
}

// live reports whether c is the content its mounting point currently holds.
func (c *Collection) live() bool {
	return c.slot != nil && c.slot.children.List(c.slot.name) == c
}
