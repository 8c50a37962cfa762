package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cxproxy/cx/internal/history"
	"github.com/cxproxy/cx/internal/tools"
)

// newProxy loads config and opens the history store. A failing history
// db degrades to no recording; a broken config is fatal.
func newProxy() (*tools.Proxy, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var hist *history.Store
	cleanup := func() {}
	if cfg.HistoryEnabled {
		path := cfg.HistoryPath
		if path == "" {
			path, err = history.DefaultPath()
		}
		if err == nil {
			hist, err = history.Open(path)
		}
		if err != nil {
			log.Debug().Err(err).Msg("history disabled")
			hist = nil
		} else {
			cleanup = func() { hist.Close() }
		}
	}

	return tools.New(cfg, hist), cleanup, nil
}

// proxyCommand builds a pass-through command: everything after the
// name goes to the wrapped tool verbatim.
func proxyCommand(use, short string, aliases []string,
	run func(ctx context.Context, p *tools.Proxy, args []string) string) *cobra.Command {

	return &cobra.Command{
		Use:                use,
		Short:              short,
		Aliases:            aliases,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cleanup, err := newProxy()
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Println(run(cmd.Context(), p, args))
			return nil
		},
	}
}

var grepRg bool

var grepCmd = &cobra.Command{
	Use:   "grep PATTERN [PATH]",
	Short: "Search with grep or ripgrep, grouped by file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := newProxy()
		if err != nil {
			return err
		}
		defer cleanup()

		path := "."
		if len(args) > 1 {
			path = args[1]
		}
		fmt.Println(p.Grep(cmd.Context(), args[0], path, grepRg))
		return nil
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls [PATH]",
	Short: "Compact directory tree listing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := newProxy()
		if err != nil {
			return err
		}
		defer cleanup()

		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		fmt.Println(p.Ls(cmd.Context(), path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(proxyCommand("git",
		"Git proxy: status, diff, log, branch, stash, merge, push, …", nil,
		func(ctx context.Context, p *tools.Proxy, args []string) string {
			return p.Git(ctx, args)
		}))
	rootCmd.AddCommand(proxyCommand("cargo",
		"Cargo proxy: build, test, clippy, fmt, run, bench, doc, …", nil,
		func(ctx context.Context, p *tools.Proxy, args []string) string {
			return p.Cargo(ctx, args)
		}))
	rootCmd.AddCommand(proxyCommand("py",
		"Python / UV proxy: pytest, ruff, mypy, pip, sync, …",
		[]string{"python", "uv"},
		func(ctx context.Context, p *tools.Proxy, args []string) string {
			return p.Python(ctx, args)
		}))
	rootCmd.AddCommand(proxyCommand("docker",
		"Docker / container commands", nil,
		func(ctx context.Context, p *tools.Proxy, args []string) string {
			return p.Docker(ctx, args)
		}))
	rootCmd.AddCommand(proxyCommand("run",
		"Run any command and truncate output", nil,
		func(ctx context.Context, p *tools.Proxy, args []string) string {
			return p.Run(ctx, args)
		}))

	grepCmd.Flags().BoolVarP(&grepRg, "rg", "r", false, "use ripgrep instead of grep")
	rootCmd.AddCommand(grepCmd)
	rootCmd.AddCommand(lsCmd)
}
