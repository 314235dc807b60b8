package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/anchor/cmd/anchor/internal/config"
	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/component"
	"github.com/go-drift/anchor/pkg/core"
	"github.com/go-drift/anchor/pkg/data"
	"github.com/go-drift/anchor/pkg/screen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRenderCmd() *cobra.Command {
	var mounts []string
	cmd := &cobra.Command{
		Use:   "render <view.yaml>",
		Short: "Build a view and print its screen tree",
		Long: `Build a view document, apply the data document to its bindings and
print the resulting tree.

Mounting points are filled with --mount name=path. Repeating a name that
belongs to a list mounting point appends to the list in order.`,
		Example: `  anchor render page.yaml --data page-data.yaml --mount rows=row.yaml --mount rows=row.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			root, err := render(cfg, args[0], mounts)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), cfg.Output, root.RootNode())
		},
	}
	cmd.Flags().StringArrayVar(&mounts, "mount", nil, "fill a mounting point: name=path (repeatable)")
	return cmd
}

func render(cfg *config.Config, path string, mounts []string) (*component.Component, error) {
	var values map[string]any
	if cfg.Data != "" {
		v, err := data.ReadFile(cfg.Data)
		if err != nil {
			return nil, err
		}
		values = v
	}

	root, err := load(path, values)
	if err != nil {
		return nil, err
	}

	lists := map[string][]core.Mountable{}
	var order []string
	for _, m := range mounts {
		name, childPath, ok := strings.Cut(m, "=")
		if !ok || name == "" || childPath == "" {
			return nil, fmt.Errorf("invalid --mount %q, want name=path", m)
		}
		child, err := load(childPath, values)
		if err != nil {
			return nil, err
		}
		if root.Children().List(name) != nil {
			if _, seen := lists[name]; !seen {
				order = append(order, name)
			}
			lists[name] = append(lists[name], child)
			continue
		}
		if err := root.Mount(name, child); err != nil {
			return nil, err
		}
	}
	for _, name := range order {
		if err := root.Mount(name, lists[name]); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func load(path string, values map[string]any) (*component.Component, error) {
	node, err := ast.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var opts []component.Option
	if values != nil {
		opts = append(opts, component.WithData(values))
	}
	return component.New(node, opts...)
}

func write(w io.Writer, output string, root *screen.Node) error {
	if output == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(screen.Snapshot(root)); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, screen.Render(root))
	return err
}
