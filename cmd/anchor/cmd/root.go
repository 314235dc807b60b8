// Package cmd implements the anchor CLI commands.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/go-drift/anchor/cmd/anchor/internal/config"
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type configKey struct{}

var cfgFile string

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "anchor",
		Short: "Build declarative view trees and inspect the result",
		Long: `anchor builds AST documents into screen trees, applies data to their
bindings, fills their mounting points with other documents and prints the
resulting tree.

Use "anchor <command> --help" for more information about a command.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose, Out: cmd.ErrOrStderr()})
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./"+config.FileName+")")
	root.PersistentFlags().Bool("verbose", false, "verbose diagnostics")
	root.PersistentFlags().String("output", config.OutputMarkup, "output format: markup or yaml")
	root.PersistentFlags().String("data", "", "data document applied to bindings")

	root.AddCommand(newRenderCmd(), newCheckCmd())
	return root
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{Output: config.OutputMarkup}
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		var ae *errors.AnchorError
		if stderrors.As(err, &ae) {
			errors.Report(ae)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}
