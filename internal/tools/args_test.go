package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ===== GIT DEFAULTS =====

func TestGitArgs_EmptyDefaultsToStatus(t *testing.T) {
	sub, args := gitArgs(nil)
	assert.Equal(t, "status", sub)
	assert.Equal(t, []string{"status"}, args)
}

func TestGitArgs_LogGetsOnelineAndCount(t *testing.T) {
	_, args := gitArgs([]string{"log"})
	assert.Equal(t, []string{"log", "--oneline", "-n30"}, args)
}

func TestGitArgs_LogRespectsUserFormat(t *testing.T) {
	_, args := gitArgs([]string{"log", "--pretty=full"})
	assert.NotContains(t, args, "--oneline")
	assert.Contains(t, args, "-n30")
}

func TestGitArgs_LogRespectsUserCount(t *testing.T) {
	_, args := gitArgs([]string{"log", "-n5"})
	assert.Equal(t, []string{"log", "--oneline", "-n5"}, args)
}

func TestGitArgs_DiffGetsStat(t *testing.T) {
	_, args := gitArgs([]string{"diff"})
	assert.Equal(t, []string{"diff", "--stat"}, args)
}

func TestGitArgs_DiffCachedSkipsStat(t *testing.T) {
	_, args := gitArgs([]string{"diff", "--cached"})
	assert.Equal(t, []string{"diff", "--cached"}, args)
}

func TestGitArgs_BareBranchListsAll(t *testing.T) {
	_, args := gitArgs([]string{"branch"})
	assert.Equal(t, []string{"branch", "-a"}, args)
}

func TestGitArgs_BranchWithNameUntouched(t *testing.T) {
	_, args := gitArgs([]string{"branch", "feature/x"})
	assert.Equal(t, []string{"branch", "feature/x"}, args)
}

func TestGitArgs_BareStashLists(t *testing.T) {
	_, args := gitArgs([]string{"stash"})
	assert.Equal(t, []string{"stash", "list"}, args)
}

func TestGitArgs_BareRemoteVerbose(t *testing.T) {
	_, args := gitArgs([]string{"remote"})
	assert.Equal(t, []string{"remote", "-v"}, args)
}

func TestGitArgs_BareTagLists(t *testing.T) {
	_, args := gitArgs([]string{"tag"})
	assert.Equal(t, []string{"tag", "-l"}, args)
}

func TestGitArgs_CleanDefaultsToDryRun(t *testing.T) {
	_, args := gitArgs([]string{"clean"})
	assert.Equal(t, []string{"clean", "-n"}, args)
}

func TestGitArgs_CleanForceStaysForce(t *testing.T) {
	_, args := gitArgs([]string{"clean", "-f"})
	assert.Equal(t, []string{"clean", "-f"}, args)
}

// ===== CARGO DEFAULTS =====

func TestCargoArgs_EmptyDefaultsToCheck(t *testing.T) {
	sub, args := cargoArgs(nil)
	assert.Equal(t, "check", sub)
	assert.Equal(t, []string{"check"}, args)
}

func TestCargoArgs_BareFmtChecksOnly(t *testing.T) {
	_, args := cargoArgs([]string{"fmt"})
	assert.Equal(t, []string{"fmt", "--check"}, args)
}

func TestCargoArgs_FmtWithArgsUntouched(t *testing.T) {
	_, args := cargoArgs([]string{"fmt", "--all"})
	assert.Equal(t, []string{"fmt", "--all"}, args)
}

func TestCargoArgs_ClippyShortMessages(t *testing.T) {
	_, args := cargoArgs([]string{"clippy"})
	assert.Equal(t, []string{"clippy", "--message-format=short"}, args)
}

func TestCargoArgs_ClippyRespectsUserFormat(t *testing.T) {
	_, args := cargoArgs([]string{"clippy", "--message-format=json"})
	assert.Equal(t, []string{"clippy", "--message-format=json"}, args)
}

func TestCargoArgs_DocNoDeps(t *testing.T) {
	_, args := cargoArgs([]string{"doc"})
	assert.Equal(t, []string{"doc", "--no-deps"}, args)
}

// ===== PYTHON ROUTING =====

func TestPythonCommand_EmptyShowsVersion(t *testing.T) {
	program, args, key := pythonCommand(nil)
	assert.Equal(t, "python", program)
	assert.Equal(t, []string{"--version"}, args)
	assert.Equal(t, "run", key)
}

func TestPythonCommand_PytestQuietFailFast(t *testing.T) {
	program, args, key := pythonCommand([]string{"pytest"})
	assert.Equal(t, "pytest", program)
	assert.Equal(t, []string{"-x", "-q"}, args)
	assert.Equal(t, "pytest", key)
}

func TestPythonCommand_PytestRespectsVerbose(t *testing.T) {
	_, args, _ := pythonCommand([]string{"pytest", "-v"})
	assert.Equal(t, []string{"-v"}, args)
}

func TestPythonCommand_TestAliasesPytest(t *testing.T) {
	program, _, key := pythonCommand([]string{"test"})
	assert.Equal(t, "pytest", program)
	assert.Equal(t, "pytest", key)
}

func TestPythonCommand_BareRuffChecks(t *testing.T) {
	program, args, _ := pythonCommand([]string{"ruff"})
	assert.Equal(t, "ruff", program)
	assert.Equal(t, []string{"check"}, args)
}

func TestPythonCommand_PipRoutesThroughUv(t *testing.T) {
	program, args, key := pythonCommand([]string{"pip", "install", "requests"})
	assert.Equal(t, "uv", program)
	assert.Equal(t, []string{"pip", "install", "requests"}, args)
	assert.Equal(t, "pip", key)
}

func TestPythonCommand_PipListKey(t *testing.T) {
	_, _, key := pythonCommand([]string{"pip", "freeze"})
	assert.Equal(t, "list", key)
}

func TestPythonCommand_BarePipLists(t *testing.T) {
	program, args, key := pythonCommand([]string{"pip"})
	assert.Equal(t, "uv", program)
	assert.Equal(t, []string{"pip", "list"}, args)
	assert.Equal(t, "list", key)
}

func TestPythonCommand_SyncIsUv(t *testing.T) {
	program, args, key := pythonCommand([]string{"sync"})
	assert.Equal(t, "uv", program)
	assert.Equal(t, []string{"sync"}, args)
	assert.Equal(t, "sync", key)
}

func TestPythonCommand_UnknownFallsThroughToUv(t *testing.T) {
	program, args, key := pythonCommand([]string{"tree"})
	assert.Equal(t, "uv", program)
	assert.Equal(t, []string{"tree"}, args)
	assert.Equal(t, "run", key)
}

// ===== GREP =====

func TestGrepArgs_DefaultGrep(t *testing.T) {
	program, args := grepArgs("TODO", "src", false)
	assert.Equal(t, "grep", program)
	assert.Equal(t, []string{"-rn", "TODO", "src"}, args)
}

func TestGrepArgs_Ripgrep(t *testing.T) {
	program, args := grepArgs("TODO", ".", true)
	assert.Equal(t, "rg", program)
	assert.Equal(t, []string{"--no-heading", "-n", "TODO", "."}, args)
}

// ===== FOOTER JOIN =====

func TestJoinFooter_EmptyCompact(t *testing.T) {
	assert.Equal(t, "[git] ok (3ms, exit 0)", joinFooter("", "[git] ok (3ms, exit 0)"))
}

func TestJoinFooter_AddsNewlineOnce(t *testing.T) {
	assert.Equal(t, "out\n[f]", joinFooter("out", "[f]"))
	assert.Equal(t, "out\n[f]", joinFooter("out\n", "[f]"))
}
