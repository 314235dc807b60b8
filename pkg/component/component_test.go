package component

import (
	"testing"

	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/core"
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/screen"
	"github.com/google/go-cmp/cmp"
)

type diagnosticRecorder struct {
	errors.LogHandler
	diags []*errors.Diagnostic
}

func (h *diagnosticRecorder) HandleDiagnostic(d *errors.Diagnostic) {
	h.diags = append(h.diags, d)
}

func mustNew(t *testing.T, node *ast.Node, opts ...Option) *Component {
	t.Helper()
	c, err := New(node, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func row(t *testing.T, label string) *Component {
	return mustNew(t, ast.New("li", ast.Bind("label")), WithData(map[string]any{"label": label}))
}

func TestNew_AppliesInitialData(t *testing.T) {
	c := mustNew(t, ast.New("p", "Hi ", ast.Bind("user", "name")),
		WithData(map[string]any{"user": map[string]any{"name": "sam"}}))

	if got := c.RootNode().TextContent(); got != "Hi sam" {
		t.Errorf("TextContent() = %q, want %q", got, "Hi sam")
	}
	if c.Element() != c.RootNode() {
		t.Error("Element should alias RootNode")
	}
}

func TestNew_StructureError(t *testing.T) {
	if _, err := New(ast.New("p", ast.MountPoint{Name: "x", Type: "table"})); err == nil {
		t.Error("expected an error for an unknown mounting point type")
	}
}

func TestComponent_NestedMounting(t *testing.T) {
	list := mustNew(t, ast.New("ul", ast.Slots("rows")))
	a, b := row(t, "a"), row(t, "b")

	if a.IsAttached() {
		t.Fatal("fresh component should be detached")
	}
	if err := list.Mount("rows", []core.Mountable{a, b}); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if !a.Attached() || !b.Attached() {
		t.Error("mounted rows should be attached")
	}
	if got := screen.Render(list.RootNode()); !cmp.Equal(got, wantList("a", "b")) {
		t.Errorf("Render() = %q, want %q", got, wantList("a", "b"))
	}

	b.Update(map[string]any{"label": "B"})
	if got := list.RootNode().TextContent(); got != "aB" {
		t.Errorf("TextContent() = %q, want %q", got, "aB")
	}
}

func wantList(labels ...string) string {
	out := "<ul>"
	if core.DescriptiveAnchors {
		out += "<!--Mounting point for 'rows'-->"
	}
	for _, l := range labels {
		out += "<li>" + l + "</li>"
	}
	return out + "</ul>"
}

func TestComponent_SingleOwnership(t *testing.T) {
	diags := &diagnosticRecorder{}
	page := mustNew(t, ast.New("main", ast.Slot("left"), ast.Slot("right")),
		WithBuilderOptions(core.WithDiagnostics(diags)))
	child := row(t, "x")

	if err := page.Mount("left", child); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if err := page.Mount("right", child); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if page.Mounted("right") != nil {
		t.Error("child must not mount twice")
	}
	if len(diags.diags) != 1 {
		t.Errorf("expected one diagnostic, got %d", len(diags.diags))
	}
}

func TestComponent_SubscribeAndUnsubscribe(t *testing.T) {
	c := mustNew(t, ast.New("p", ast.Bind("count")), WithData(map[string]any{"count": 1}))

	var seen []any
	h := c.Subscribe(nil, "count", func(v any) { seen = append(seen, v) })
	c.Update(map[string]any{"count": 2})

	if !c.Unsubscribe(nil, "count", h) {
		t.Error("Unsubscribe should find the handle")
	}
	c.Update(map[string]any{"count": 3})

	if diff := cmp.Diff([]any{1, 2}, seen); diff != "" {
		t.Errorf("seen mismatch (-want +got):\n%s", diff)
	}
	if got := c.RootNode().TextContent(); got != "3" {
		t.Errorf("bound text = %q, want 3", got)
	}
}

func TestComponent_SubscribeUnsetValue(t *testing.T) {
	c := mustNew(t, ast.New("p"))
	calls := 0
	c.Subscribe([]string{"a", "b"}, "c", func(any) { calls++ })
	if calls != 0 {
		t.Error("no initial call for an unset value")
	}
	c.Update(map[string]any{"a": map[string]any{"b": map[string]any{"c": true}}})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestComponent_Methods(t *testing.T) {
	var got []any
	c := mustNew(t, ast.New("button", ast.Bind("label")), WithMethods(map[string]Method{
		"press": func(c *Component, args ...any) {
			got = args
			c.Update(map[string]any{"label": "pressed"})
		},
	}))

	if err := c.Call("press", 1, "x"); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if diff := cmp.Diff([]any{1, "x"}, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if c.RootNode().TextContent() != "pressed" {
		t.Error("method should be able to update data")
	}
	if err := c.Call("missing"); err == nil {
		t.Error("expected an error for an unknown method")
	}
	if diff := cmp.Diff([]string{"press"}, c.Methods()); diff != "" {
		t.Errorf("Methods() mismatch (-want +got):\n%s", diff)
	}
}

func TestComponent_Destroy(t *testing.T) {
	outer := mustNew(t, ast.New("div", ast.Slot("inner")))
	inner := mustNew(t, ast.New("section", ast.Slot("leaf"), ast.Slots("rows")))
	leaf, r := row(t, "leaf"), row(t, "r")
	if err := inner.Mount("leaf", leaf); err != nil {
		t.Fatal(err)
	}
	if err := inner.Mount("rows", []core.Mountable{r}); err != nil {
		t.Fatal(err)
	}
	if err := outer.Mount("inner", inner); err != nil {
		t.Fatal(err)
	}

	inner.Destroy()

	if inner.IsAttached() || leaf.IsAttached() || r.IsAttached() {
		t.Error("Destroy should detach the component and its children")
	}
	if inner.Mounted("leaf") != nil {
		t.Error("single slot should be empty")
	}
	if rows := inner.Children().List("rows"); rows.Len() != 0 {
		t.Errorf("rows Len() = %d, want 0", rows.Len())
	}
}
