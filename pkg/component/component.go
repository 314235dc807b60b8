// Package component provides a Mountable component built from an AST.
//
// A Component owns its state, children registry, subscriber tree and root
// screen node. Components mount into each other through mounting points:
//
//	list, _ := component.New(ast.New("ul", ast.Slots("rows")))
//	row, _ := component.New(ast.New("li", ast.Bind("label")))
//	row.Update(map[string]any{"label": "first"})
//	list.Mount("rows", []core.Mountable{row})
package component

import (
	"fmt"

	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/core"
	"github.com/go-drift/anchor/pkg/data"
	"github.com/go-drift/anchor/pkg/screen"
)

// Method is a named handler exposed by a component.
type Method func(c *Component, args ...any)

// Component is a built AST together with everything it owns.
//
// Component is NOT thread-safe. It must only be accessed from the UI thread.
type Component struct {
	state       *core.State
	children    core.Registry
	subscribers *data.Tree
	root        *screen.Node
	methods     map[string]Method
}

type config struct {
	builder []core.Option
	values  map[string]any
	methods map[string]Method
}

// Option configures New.
type Option func(*config)

// WithBuilderOptions passes options to the underlying core.Builder.
func WithBuilderOptions(opts ...core.Option) Option {
	return func(c *config) { c.builder = append(c.builder, opts...) }
}

// WithData applies initial values after the tree is built.
func WithData(values map[string]any) Option {
	return func(c *config) { c.values = values }
}

// WithMethods sets the component's method table.
func WithMethods(methods map[string]Method) Option {
	return func(c *config) { c.methods = methods }
}

// New builds a component from node.
func New(node *ast.Node, opts ...Option) (*Component, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Component{
		state:       core.NewState(nil),
		children:    core.Registry{},
		subscribers: data.NewTree(),
		methods:     make(map[string]Method, len(cfg.methods)),
	}
	for name, m := range cfg.methods {
		c.methods[name] = m
	}

	root, err := core.NewBuilder(cfg.builder...).Build(node, c.state, c.children, c.subscribers)
	if err != nil {
		return nil, err
	}
	c.root = root

	if cfg.values != nil {
		c.Update(cfg.values)
	}
	return c, nil
}

// RootNode returns the component's root screen node.
func (c *Component) RootNode() *screen.Node {
	return c.root
}

// Element is an alias for RootNode.
func (c *Component) Element() *screen.Node {
	return c.root
}

// IsAttached reports whether the root node currently has a parent.
func (c *Component) IsAttached() bool {
	return c.root.Parent() != nil
}

// Attached is an alias for IsAttached.
func (c *Component) Attached() bool {
	return c.IsAttached()
}

// State returns the component state holding the mounting point accessors.
func (c *Component) State() *core.State {
	return c.state
}

// Data returns the data root bindings resolve against.
func (c *Component) Data() *data.Node {
	return c.state.Data()
}

// Update writes values into the data tree, refreshing bound text.
func (c *Component) Update(values map[string]any) {
	c.state.Data().Update(values)
}

// Mount writes value to the mounting point called name.
func (c *Component) Mount(name string, value any) error {
	return c.state.Set(name, value)
}

// Mounted reads the mounting point called name.
func (c *Component) Mounted(name string) any {
	return c.state.Get(name)
}

// Children returns the registry of mounted content.
func (c *Component) Children() core.Registry {
	return c.children
}

// Subscribe adds fn to the binding at path/name and calls it once with the
// current value, if any. The returned handle is accepted by Unsubscribe.
func (c *Component) Subscribe(path []string, name string, fn data.Subscriber) data.Handle {
	source, subs := data.Resolve(data.Request{
		Path:        path,
		Name:        name,
		Root:        c.state.Data(),
		Subscribers: c.subscribers,
	})
	h := subs.Add(fn)
	data.Wire(subs, source, name)
	if v, ok := source.Get(name); ok {
		fn(v)
	}
	return h
}

// Unsubscribe removes a subscriber added by Subscribe.
func (c *Component) Unsubscribe(path []string, name string, h data.Handle) bool {
	tree := c.subscribers
	for _, seg := range path {
		tree = tree.Child(seg)
	}
	return tree.List(name).Remove(h)
}

// Methods returns the method names in no particular order.
func (c *Component) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	return names
}

// Call invokes the named method.
func (c *Component) Call(name string, args ...any) error {
	m, ok := c.methods[name]
	if !ok {
		return fmt.Errorf("component: no method named %q", name)
	}
	m(c, args...)
	return nil
}

// Destroy unmounts every child and detaches the root node.
func (c *Component) Destroy() {
	for _, name := range c.state.Names() {
		// nil clears both single slots and lists
		_ = c.state.Set(name, nil)
	}
	screen.Remove(c.root)
}
