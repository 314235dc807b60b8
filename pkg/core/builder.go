package core

import (
	"fmt"

	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/data"
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/screen"
)

// LeafFactory creates the element a Node's tag describes.
type LeafFactory interface {
	CreateLeaf(tag ast.Tag, state *State, subscribers *data.Tree) (*screen.Node, error)
}

// Resolver finds the data node and subscriber list behind a binding.
type Resolver interface {
	Resolve(req data.Request) (*data.Node, *data.Subscribers)
}

// Registrar wires a subscriber list to its data slot. It must tolerate being
// called repeatedly for the same pair.
type Registrar interface {
	Wire(subs *data.Subscribers, source *data.Node, name string, state *State)
}

// Mutator performs the primitive screen tree mutations.
type Mutator interface {
	Append(parent, child *screen.Node)
	InsertAfter(anchor, node *screen.Node)
	Remove(node *screen.Node)
}

// Builder materializes AST nodes. The zero value is not usable; call NewBuilder.
type Builder struct {
	leaves      LeafFactory
	resolver    Resolver
	registrar   Registrar
	tree        Mutator
	diagnostics errors.Handler
}

// Option configures a Builder.
type Option func(*Builder)

// WithLeafFactory replaces the default element factory.
func WithLeafFactory(f LeafFactory) Option {
	return func(b *Builder) { b.leaves = f }
}

// WithResolver replaces the default data resolver.
func WithResolver(r Resolver) Option {
	return func(b *Builder) { b.resolver = r }
}

// WithRegistrar replaces the default subscription registrar.
func WithRegistrar(r Registrar) Option {
	return func(b *Builder) { b.registrar = r }
}

// WithMutator replaces the default screen tree mutator.
func WithMutator(m Mutator) Option {
	return func(b *Builder) { b.tree = m }
}

// WithDiagnostics routes diagnostics to h instead of the global handler.
func WithDiagnostics(h errors.Handler) Option {
	return func(b *Builder) { b.diagnostics = h }
}

// NewBuilder returns a Builder using the default collaborators unless
// overridden by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		leaves:    elementFactory{},
		resolver:  dataResolver{},
		registrar: dataRegistrar{},
		tree:      screen.Tree{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates the subtree for node with a default Builder.
func Build(node *ast.Node, state *State, children Registry, subscribers *data.Tree) (*screen.Node, error) {
	return NewBuilder().Build(node, state, children, subscribers)
}

// Build creates the subtree for node. It installs mounting point accessors on
// state and registers list collections in children. The returned subtree is
// detached; attaching it is the caller's job.
//
// A StructureError aborts the build immediately. Entries processed before the
// defect keep their side effects on state and children.
func (b *Builder) Build(node *ast.Node, state *State, children Registry, subscribers *data.Tree) (*screen.Node, error) {
	if node == nil {
		return nil, &errors.StructureError{Op: "core.Build", Detail: "nil node"}
	}
	element, err := b.leaves.CreateLeaf(node.Tag, state, subscribers)
	if err != nil {
		return nil, err
	}

	for _, entry := range node.Children {
		switch v := entry.(type) {
		case string:
			b.tree.Append(element, screen.NewText(v))
		case *ast.Node:
			if err := b.appendChild(element, v, state, children, subscribers); err != nil {
				return nil, err
			}
		case ast.Node:
			if err := b.appendChild(element, &v, state, children, subscribers); err != nil {
				return nil, err
			}
		case ast.Binding:
			if err := b.bindText(element, v, state, subscribers); err != nil {
				return nil, err
			}
		case ast.MountPoint:
			if err := b.mountPoint(element, v, state, children); err != nil {
				return nil, err
			}
		default:
			return nil, &errors.StructureError{
				Op:     "core.Build",
				Shape:  fmt.Sprintf("%T", entry),
				Detail: "unknown node type",
			}
		}
	}

	return element, nil
}

func (b *Builder) appendChild(element *screen.Node, node *ast.Node, state *State, children Registry, subscribers *data.Tree) error {
	child, err := b.Build(node, state, children, subscribers)
	if err != nil {
		return err
	}
	b.tree.Append(element, child)
	return nil
}

func (b *Builder) mountPoint(element *screen.Node, mp ast.MountPoint, state *State, children Registry) error {
	if IsReserved(mp.Name) {
		errors.ReportDiagnostic(b.diagnostics, &errors.Diagnostic{
			Kind:    errors.KindReserved,
			Name:    mp.Name,
			Message: fmt.Sprintf("No reserved name '%s' should be used, ignoring.", mp.Name),
		})
		return nil
	}
	if state.Has(mp.Name) {
		return &errors.StructureError{
			Op:     "core.Build",
			Detail: fmt.Sprintf("mounting point '%s' declared twice", mp.Name),
		}
	}

	anchor := newAnchor(mp.Name)
	switch mp.Type {
	case ast.Single:
		state.install(&singleSlot{name: mp.Name, anchor: anchor, children: children, b: b})
	case ast.List:
		slot := &listSlot{name: mp.Name, anchor: anchor, children: children, b: b}
		children[mp.Name] = newBoundCollection(slot)
		state.install(slot)
	default:
		return &errors.StructureError{
			Op:     "core.Build",
			Detail: fmt.Sprintf("unknown mounting point type '%s'", mp.Type),
		}
	}
	b.tree.Append(element, anchor)
	return nil
}

func (b *Builder) attachmentConflict(name string) {
	errors.ReportDiagnostic(b.diagnostics, &errors.Diagnostic{
		Kind:    errors.KindAttachment,
		Name:    name,
		Message: fmt.Sprintf("Component is already attached elsewhere, not mounting it at '%s'.", name),
	})
}

func newAnchor(name string) *screen.Node {
	if DescriptiveAnchors {
		return screen.NewComment(fmt.Sprintf("Mounting point for '%s'", name))
	}
	return screen.NewText("")
}

type elementFactory struct{}

func (elementFactory) CreateLeaf(tag ast.Tag, _ *State, _ *data.Tree) (*screen.Node, error) {
	if tag.Name == "" {
		return nil, &errors.StructureError{Op: "core.Build", Detail: "tag has no name"}
	}
	return screen.NewElement(tag.Name, tag.Attrs), nil
}

type dataResolver struct{}

func (dataResolver) Resolve(req data.Request) (*data.Node, *data.Subscribers) {
	return data.Resolve(req)
}

type dataRegistrar struct{}

func (dataRegistrar) Wire(subs *data.Subscribers, source *data.Node, name string, _ *State) {
	data.Wire(subs, source, name)
}
