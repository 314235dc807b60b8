package core

import (
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/screen"
)

// singleSlot keeps at most one Mountable right after its anchor.
type singleSlot struct {
	name     string
	anchor   *screen.Node
	children Registry
	b        *Builder
}

func (s *singleSlot) Name() string { return s.name }

func (s *singleSlot) Read() any {
	if m := s.children.Single(s.name); m != nil {
		return m
	}
	return nil
}

func (s *singleSlot) Write(value any) error {
	var next Mountable
	if value != nil {
		m, ok := value.(Mountable)
		if !ok {
			return &errors.ValueError{Name: s.name, Want: "a Mountable", Got: value}
		}
		next = m
	}

	current := s.children.Single(s.name)
	if sameInstance(next, current) {
		return nil
	}
	if next == nil {
		s.b.tree.Remove(current.RootNode())
		delete(s.children, s.name)
		return nil
	}
	if next.IsAttached() {
		s.b.attachmentConflict(s.name)
		return nil
	}

	if current != nil {
		s.b.tree.Remove(current.RootNode())
	}
	s.b.tree.InsertAfter(s.anchor, next.RootNode())
	s.children[s.name] = next
	return nil
}
