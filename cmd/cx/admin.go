package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cxproxy/cx/internal/config"
	"github.com/cxproxy/cx/internal/history"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show detected project type and current config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Println("[cx info]")
		fmt.Printf("  version: %s\n", version)
		if types := config.DetectProject(); len(types) == 0 {
			fmt.Println("  project: (none detected)")
		} else {
			fmt.Printf("  project: %s\n", strings.Join(types, ", "))
		}
		fmt.Printf("  max_lines: %d\n", cfg.MaxLines)
		fmt.Printf("  max_line_len: %d\n", cfg.MaxLineLen)
		fmt.Printf("  show_footer: %t\n", cfg.ShowFooter)
		fmt.Printf("  ls_max_depth: %d\n", cfg.LsMaxDepth)
		fmt.Printf("  ls_max_entries: %d\n", cfg.LsMaxEntries)
		fmt.Printf("  ls_skip: [%s]\n", strings.Join(cfg.LsSkip, ", "))
		return nil
	},
}

var initGlobal bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectFile
		if initGlobal {
			global, ok := config.GlobalPath()
			if !ok {
				return fmt.Errorf("could not determine config directory")
			}
			if err := os.MkdirAll(filepath.Dir(global), 0755); err != nil {
				return fmt.Errorf("could not create config dir: %w", err)
			}
			path = global
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("[cx] config already exists: %s\n", path)
			return nil
		}

		if err := os.WriteFile(path, []byte(config.DefaultYAML()), 0644); err != nil {
			return fmt.Errorf("could not write config: %w", err)
		}
		fmt.Printf("[cx] created %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cx version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cx %s\n", version)
	},
}

var historyN int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent invocations and cumulative savings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.HistoryPath
		if path == "" {
			if path, err = history.DefaultPath(); err != nil {
				return err
			}
		}
		store, err := history.Open(path)
		if err != nil {
			return fmt.Errorf("could not open history: %w", err)
		}
		defer store.Close()

		records, err := store.Recent(historyN)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("[cx history] empty")
			return nil
		}

		fmt.Printf("[cx history] last %d invocations\n", len(records))
		for _, r := range records {
			label := r.Tool
			if r.Sub != "" {
				label += " " + r.Sub
			}
			fmt.Printf("  %s  %-20s exit %-3d %6dms  %6dB → %dB  (saved ~%d tokens)\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				label, r.ExitCode, r.ElapsedMS,
				r.RawBytes, r.CompactBytes, r.TokensSaved())
		}

		totals, err := store.Totals()
		if err != nil {
			return err
		}
		fmt.Printf("  total: %d invocations, %dB → %dB, ~%d tokens saved\n",
			totals.Invocations, totals.RawBytes, totals.CompactBytes, totals.TokensSaved)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false,
		"generate in ~/.config/cx/ instead of current directory")
	historyCmd.Flags().IntVarP(&historyN, "count", "n", 20,
		"number of invocations to show")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
