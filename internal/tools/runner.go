package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RunResult is the raw output of one executed command plus metadata.
type RunResult struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	ElapsedMS int64
}

// Combined merges stdout and stderr into one string, stderr last,
// separated by a newline only when stdout is nonempty.
func (r RunResult) Combined() string {
	var b strings.Builder
	b.WriteString(r.Stdout)
	if r.Stderr != "" {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Stderr)
	}
	return b.String()
}

// Success reports whether the command exited zero.
func (r RunResult) Success() bool {
	return r.ExitCode == 0
}

// Exec spawns a process, captures stdout and stderr separately and
// measures elapsed time. A non-zero exit is not an error; only spawn
// failures are. Exit code is -1 when the process was killed.
func Exec(ctx context.Context, program string, args []string) (RunResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return RunResult{}, fmt.Errorf("failed to run `%s`: %w", program, err)
		}
	}

	return RunResult{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  exitCode,
		ElapsedMS: elapsed,
	}, nil
}
