package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/anchor/pkg/core"
	"github.com/go-drift/anchor/pkg/errors"
)

const pageDoc = `
format: v1.0.0
ast:
  - {tag: main}
  - [{tag: h1}, [title]]
  - {name: header, type: node}
  - [{tag: ul}, {name: rows, type: list}]
`

const rowDoc = `
ast:
  - {tag: li}
  - [title]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	defer errors.SetHandler(errors.CurrentHandler())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender_Markup(t *testing.T) {
	page := writeFile(t, "page.yaml", pageDoc)
	row := writeFile(t, "row.yaml", rowDoc)
	values := writeFile(t, "data.yaml", "title: Inbox\n")

	got, err := run(t, "render", page, "--data", values, "--mount", "rows="+row, "--mount", "rows="+row, "--mount", "header="+row)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	want := "<main><h1>Inbox</h1>" +
		anchor("header") + "<li>Inbox</li>" +
		"<ul>" + anchor("rows") + "<li>Inbox</li><li>Inbox</li></ul></main>\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func anchor(name string) string {
	if core.DescriptiveAnchors {
		return "<!--Mounting point for '" + name + "'-->"
	}
	return ""
}

func TestRender_YAML(t *testing.T) {
	page := writeFile(t, "page.yaml", rowDoc)

	got, err := run(t, "render", page, "--output", "yaml")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(got, "kind: element") || !strings.Contains(got, "tag: li") {
		t.Errorf("unexpected yaml output:\n%s", got)
	}
}

func TestRender_BadMountFlag(t *testing.T) {
	page := writeFile(t, "page.yaml", pageDoc)
	if _, err := run(t, "render", page, "--mount", "rows"); err == nil {
		t.Error("expected an error for a mount flag without a path")
	}
}

func TestCheck(t *testing.T) {
	page := writeFile(t, "page.yaml", pageDoc)

	got, err := run(t, "check", page)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	for _, want := range []string{"ok", "header (single)", "rows (list)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestCheck_StructureError(t *testing.T) {
	page := writeFile(t, "bad.yaml", "ast:\n  - {tag: div}\n  - {name: x, type: grid}\n")
	if _, err := run(t, "check", page); err == nil {
		t.Error("expected an error for an unknown mounting point type")
	}
}

// chdir changes the working directory to dir for the duration of the test,
// restoring the previous one on cleanup (stand-in for testing.T.Chdir, which
// requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
