// Package main is the cx entry point.
//
// cx wraps noisy developer tools (git, cargo, python/uv, docker, grep)
// and prints compressed summaries sized for LLM context windows.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cxproxy/cx/internal/config"
	"github.com/cxproxy/cx/internal/logging"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "cx",
	Short:         "CLI proxy — compresses shell outputs for AI context (Cursor, Claude, Copilot, …)",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadEnvFiles loads .env from standard locations.
func loadEnvFiles() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		_ = godotenv.Load()
		return
	}

	configEnv := filepath.Join(homeDir, ".config", "cx", ".env")
	if _, err := os.Stat(configEnv); err == nil {
		_ = godotenv.Load(configEnv)
	}

	// Local .env can override.
	_ = godotenv.Load()
}

func main() {
	loadEnvFiles()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[cx] error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective config and installs the logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	logging.Setup(cfg.LogLevel)
	return cfg, nil
}
