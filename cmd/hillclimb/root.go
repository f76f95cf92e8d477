package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: slog.Default()}

	root := &cobra.Command{
		Use:           "hillclimb [FILE]",
		Short:         "Shortest climbing routes on elevation grids",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.NewLogger(cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return a.solve(cmd, args[0], solveOpts{})
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(a.solveCmd(), a.viewCmd(), a.serveCmd(), schemaCmd())

	return root
}

// loadGrid parses the grid at path; "-" reads stdin.
func loadGrid(cmd *cobra.Command, path string) (*heightmap.GridMap, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	g, err := heightmap.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
