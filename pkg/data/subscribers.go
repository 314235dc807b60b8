package data

import (
	"github.com/go-drift/anchor/pkg/errors"
)

// Subscriber receives the new value of a bound data slot.
type Subscriber func(value any)

// Handle identifies a subscriber added to a list.
type Handle uint64

type entry struct {
	handle Handle
	fn     Subscriber
}

// Subscribers is an ordered list of callbacks for one data slot.
type Subscribers struct {
	entries []entry
	next    Handle
}

// Add appends fn and returns a handle that removes it.
func (s *Subscribers) Add(fn Subscriber) Handle {
	s.next++
	s.entries = append(s.entries, entry{handle: s.next, fn: fn})
	return s.next
}

// Remove drops the subscriber identified by h. It reports whether h was found.
func (s *Subscribers) Remove(h Handle) bool {
	for i, e := range s.entries {
		if e.handle == h {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of subscribers.
func (s *Subscribers) Len() int {
	return len(s.entries)
}

// Notify calls every subscriber in order. A panicking subscriber is reported
// and does not stop the others.
func (s *Subscribers) Notify(value any) {
	entries := append([]entry(nil), s.entries...)
	for _, e := range entries {
		notifyOne(e.fn, value)
	}
}

func notifyOne(fn Subscriber, value any) {
	defer errors.Recover("data.Notify")
	fn(value)
}

// Tree mirrors the data tree and holds one subscriber list per bound slot.
type Tree struct {
	lists    map[string]*Subscribers
	children map[string]*Tree
}

// NewTree creates an empty subscriber tree.
func NewTree() *Tree {
	return &Tree{}
}

// Child returns the subtree called name, creating it if needed.
func (t *Tree) Child(name string) *Tree {
	if c, ok := t.children[name]; ok {
		return c
	}
	if t.children == nil {
		t.children = make(map[string]*Tree)
	}
	c := NewTree()
	t.children[name] = c
	return c
}

// List returns the subscriber list for name, creating it if needed.
func (t *Tree) List(name string) *Subscribers {
	if l, ok := t.lists[name]; ok {
		return l
	}
	if t.lists == nil {
		t.lists = make(map[string]*Subscribers)
	}
	l := &Subscribers{}
	t.lists[name] = l
	return l
}
