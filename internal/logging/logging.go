// Package logging provides structured logging via zerolog.
//
// DESIGN: Thin wrapper around zerolog with:
//   - Level from config, overridable via the CX_LOG env variable
//   - Console format when stderr is a terminal, JSON otherwise
//   - Setup() installs the global logger; all packages use zerolog/log
//
// Logs always go to stderr so compressed tool output on stdout stays
// pipeable.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// EnvLevel overrides the configured level when set (e.g. CX_LOG=debug).
const EnvLevel = "CX_LOG"

// New creates a logger writing to stderr at the given level.
func New(levelName string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env := os.Getenv(EnvLevel); env != "" {
		levelName = env
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.WarnLevel
	}

	var zl zerolog.Logger
	if term.IsTerminal(int(os.Stderr.Fd())) {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		zl = zerolog.New(writer)
	} else {
		zl = zerolog.New(os.Stderr)
	}
	return zl.Level(level).With().Timestamp().Logger()
}

// Setup installs the global logger used by zerolog/log.
func Setup(levelName string) {
	log.Logger = New(levelName)
}
