package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyboot/internal/shared"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"up", "ensure", "status", "validate", "clean"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestUpCommandFlags(t *testing.T) {
	cmd := newUpCommand()
	flags := []string{
		"workdir", "venv", "python", "manifest", "entrypoint",
		"index-url", "env-file", "skip-pip-upgrade",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestEnsureCommandFlags(t *testing.T) {
	cmd := newEnsureCommand()
	flags := []string{
		"workdir", "venv", "python", "manifest",
		"index-url", "skip-pip-upgrade",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestStatusCommandFlags(t *testing.T) {
	cmd := newStatusCommand()
	for _, name := range []string{"workdir", "venv", "manifest"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestCleanCommandFlags(t *testing.T) {
	cmd := newCleanCommand()
	for _, name := range []string{"workdir", "venv"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

// ---------- Exit code mapping tests ----------

func TestExitCodeForErrorSubprocessPassthrough(t *testing.T) {
	err := &shared.ExitError{Step: "pip install", Code: 9, Err: errors.New("exit status 9")}
	assert.Equal(t, 9, exitCodeForError(err))
}

func TestExitCodeForErrorInvalidArgument(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid manifest")
	assert.Equal(t, 2, exitCodeForError(err))
}

func TestExitCodeForErrorFailedPrecondition(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("2 requirement(s) unsatisfied")
	assert.Equal(t, 4, exitCodeForError(err))
}

func TestExitCodeForErrorNotFound(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("manifest not found: requirements.txt")
	assert.Equal(t, 5, exitCodeForError(err))
}

func TestExitCodeForErrorEntryPointStartFailure(t *testing.T) {
	err := &shared.ExitError{Step: "launch", Code: 1, Err: errors.New("fork/exec: no such file")}
	assert.Equal(t, 1, exitCodeForError(err))
}

func TestExitCodeForErrorUnknown(t *testing.T) {
	assert.Equal(t, 1, exitCodeForError(errors.New("plain error")))
}

// ---------- Flag resolution tests ----------

func TestResolveStringPrefersChangedFlag(t *testing.T) {
	cmd := newUpCommand()
	require.NoError(t, cmd.Flags().Set("workdir", "/tmp/app"))
	assert.Equal(t, "/tmp/app", resolveString(cmd, "/tmp/app", "workdir", "workdir"))
}

func TestResolveStringNilCommand(t *testing.T) {
	assert.Equal(t, "value", resolveString(nil, "value", "missing_key", "missing"))
}

func TestFlagChanged(t *testing.T) {
	cmd := newUpCommand()
	assert.False(t, flagChanged(cmd, "workdir"))
	require.NoError(t, cmd.Flags().Set("workdir", "/tmp"))
	assert.True(t, flagChanged(cmd, "workdir"))
	assert.False(t, flagChanged(cmd, ""))
	assert.False(t, flagChanged(nil, "workdir"))
}
