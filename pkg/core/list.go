package core

import (
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/screen"
)

// listSlot keeps an ordered Collection right after its anchor.
type listSlot struct {
	name     string
	anchor   *screen.Node
	children Registry
	b        *Builder
}

func (l *listSlot) Name() string { return l.name }

func (l *listSlot) Read() any {
	return l.children.List(l.name)
}

// Write replaces the list content. Items already in the current collection
// are moved rather than remounted. A collection held by another list
// mounting point is rejected as attached elsewhere, even when empty.
//
// An item attached to another mounting point aborts the write. Moves and
// removals already done by this write are kept and value is left untagged.
// Items staged before the rejected one stay parented to a detached fragment:
// they report IsAttached and cannot be mounted again.
func (l *listSlot) Write(value any) error {
	var next *Collection
	switch v := value.(type) {
	case *Collection:
		if v != nil && v.live() && v.slot != l {
			l.b.attachmentConflict(l.name)
			return nil
		}
		next = v
	case []Mountable:
		next = NewCollection(v...)
	case nil:
		next = NewCollection()
	default:
		return &errors.ValueError{Name: l.name, Want: "a *Collection or []Mountable", Got: value}
	}
	if next == nil {
		next = NewCollection()
	}

	prev := l.children.List(l.name)
	if next == prev {
		return nil
	}
	if prev == nil {
		prev = NewCollection()
	}

	fragment := screen.NewFragment()
	for _, item := range next.items {
		if item.IsAttached() && !prev.contains(item) {
			l.b.attachmentConflict(l.name)
			return nil
		}
		l.b.tree.Append(fragment, item.RootNode())
		prev.forget(item)
	}
	for _, item := range prev.items {
		l.b.tree.Remove(item.RootNode())
	}

	next.anchor = l.anchor
	next.slot = l
	l.children[l.name] = next
	l.b.tree.InsertAfter(l.anchor, fragment)
	return nil
}
