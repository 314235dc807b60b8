package core

import (
	"fmt"

	"github.com/go-drift/anchor/pkg/data"
)

// Accessor is the reactive property installed on a State for one mounting point.
type Accessor interface {
	// Name returns the mounting point name.
	Name() string
	// Read returns the current content: a Mountable, a *Collection, or nil.
	Read() any
	// Write reconciles the screen tree with value. It returns an error only
	// when value has the wrong type; policy violations are reported as
	// diagnostics.
	Write(value any) error
}

// State is the component state that mounting point accessors are installed on.
// It also carries the data root used to resolve bindings.
//
// State is NOT thread-safe. Writes to the same accessor must be serialized by
// the caller.
type State struct {
	data      *data.Node
	accessors map[string]Accessor
	order     []string
}

// NewState creates a State over root. A nil root gets a fresh data node.
func NewState(root *data.Node) *State {
	if root == nil {
		root = data.NewNode()
	}
	return &State{data: root, accessors: make(map[string]Accessor)}
}

// Data returns the data root.
func (s *State) Data() *data.Node {
	return s.data
}

// Accessor returns the accessor installed for name.
func (s *State) Accessor(name string) (Accessor, bool) {
	a, ok := s.accessors[name]
	return a, ok
}

// Has reports whether an accessor is installed for name.
func (s *State) Has(name string) bool {
	_, ok := s.accessors[name]
	return ok
}

// Get reads the mounting point called name. It returns nil for unknown names.
func (s *State) Get(name string) any {
	if a, ok := s.accessors[name]; ok {
		return a.Read()
	}
	return nil
}

// Set writes value to the mounting point called name.
func (s *State) Set(name string, value any) error {
	a, ok := s.accessors[name]
	if !ok {
		return fmt.Errorf("core: no mounting point named %q", name)
	}
	return a.Write(value)
}

// Names returns installed mounting point names in installation order.
func (s *State) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *State) install(a Accessor) {
	s.accessors[a.Name()] = a
	s.order = append(s.order, a.Name())
}

// Registry maps mounting point names to their current content: a Mountable for
// single slots, a *Collection for lists. Absent names have never been assigned.
type Registry map[string]any

// Single returns the instance held by a single-slot mounting point.
func (r Registry) Single(name string) Mountable {
	m, _ := r[name].(Mountable)
	return m
}

// List returns the collection held by a list mounting point.
func (r Registry) List(name string) *Collection {
	c, _ := r[name].(*Collection)
	return c
}
