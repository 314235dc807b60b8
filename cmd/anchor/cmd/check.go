package cmd

import (
	"fmt"

	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/component"
	"github.com/go-drift/anchor/pkg/core"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <view.yaml>...",
		Short: "Validate view documents and list their mounting points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				node, err := ast.ReadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				c, err := component.New(node)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(out, "%s: ok\n", path)
				for _, name := range c.State().Names() {
					kind := "single"
					if c.Children().List(name) != nil {
						kind = "list"
					}
					fmt.Fprintf(out, "  %s (%s)\n", name, kind)
				}
				if configFrom(cmd).Verbose {
					fmt.Fprintf(out, "  reserved: %v\n", core.ReservedNames())
				}
			}
			return nil
		},
	}
}
