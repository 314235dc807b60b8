package core

import (
	"testing"

	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/data"
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/screen"
)

// testComponent is a minimal Mountable: attached while its root has a parent.
type testComponent struct {
	root *screen.Node
}

func newTestComponent(label string) *testComponent {
	root := screen.NewElement("item", nil)
	screen.Append(root, screen.NewText(label))
	return &testComponent{root: root}
}

func (c *testComponent) RootNode() *screen.Node { return c.root }
func (c *testComponent) IsAttached() bool { return c.root.Parent() != nil }

// countingTree counts mutations while delegating to the real tree.
type countingTree struct {
	screen.Tree
	appends, inserts, removes int
}

func (t *countingTree) Append(parent, child *screen.Node) {
	t.appends++
	t.Tree.Append(parent, child)
}

func (t *countingTree) InsertAfter(anchor, node *screen.Node) {
	t.inserts++
	t.Tree.InsertAfter(anchor, node)
}

func (t *countingTree) Remove(node *screen.Node) {
	t.removes++
	t.Tree.Remove(node)
}

func (t *countingTree) total() int { return t.appends + t.inserts + t.removes }

func (t *countingTree) reset() { t.appends, t.inserts, t.removes = 0, 0, 0 }

// diagnosticRecorder captures diagnostics for testing.
type diagnosticRecorder struct {
	errors.LogHandler
	diags []*errors.Diagnostic
}

func (h *diagnosticRecorder) HandleDiagnostic(d *errors.Diagnostic) {
	h.diags = append(h.diags, d)
}

type fixture struct {
	root     *screen.Node
	state    *State
	children Registry
	tree     *countingTree
	diags    *diagnosticRecorder
}

func build(t *testing.T, node *ast.Node) *fixture {
	t.Helper()
	f := &fixture{
		state:    NewState(nil),
		children: Registry{},
		tree:     &countingTree{},
		diags:    &diagnosticRecorder{},
	}
	b := NewBuilder(WithMutator(f.tree), WithDiagnostics(f.diags))
	root, err := b.Build(node, f.state, f.children, data.NewTree())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	f.root = root
	f.tree.reset()
	return f
}

func (f *fixture) set(t *testing.T, name string, value any) {
	t.Helper()
	if err := f.state.Set(name, value); err != nil {
		t.Fatalf("Set(%q) error = %v", name, err)
	}
}

// anchorOf returns the anchor node of an installed mounting point.
func (f *fixture) anchorOf(name string) *screen.Node {
	switch a := f.state.accessors[name].(type) {
	case *singleSlot:
		return a.anchor
	case *listSlot:
		return a.anchor
	}
	return nil
}

// labelsAfter returns the text of every sibling following anchor.
func labelsAfter(anchor *screen.Node) []string {
	var out []string
	for n := anchor.NextSibling(); n != nil; n = n.NextSibling() {
		out = append(out, n.TextContent())
	}
	return out
}
