// cmd/wasmedgeup/root_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test CLI command wiring and output

package wasmedgeup_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Arshdeep54/wasmedgeup/cmd/wasmedgeup"
	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep logging and config away from the real home
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".state"))
	xdg.Reload()

	var out bytes.Buffer
	cmd := wasmedgeup.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHasExpectedCommands(t *testing.T) {
	cmd := wasmedgeup.NewRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, expected := range []string{"install", "remove", "list", "env", "version", "completion"} {
		assert.Contains(t, names, expected)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wasmedgeup version")
	assert.Contains(t, out, "commit:")
}

func TestEnvCommandPOSIX(t *testing.T) {
	out, err := execute(t, "env", "--shell", "bash", "--path", "/opt/wasmedge")
	require.NoError(t, err)

	assert.Contains(t, out, `export PATH="/opt/wasmedge/bin${PATH:+:${PATH}}"`)
	assert.Contains(t, out, "/opt/wasmedge/lib")
	assert.NotContains(t, out, "{WASMEDGE_BIN_DIR}")
}

func TestEnvCommandFish(t *testing.T) {
	out, err := execute(t, "env", "--shell", "fish", "--path", "/opt/wasmedge")
	require.NoError(t, err)

	assert.Contains(t, out, `set -gx PATH "/opt/wasmedge/bin" $PATH`)
	assert.Contains(t, out, "LD_LIBRARY_PATH")
}

func TestEnvCommandUnknownShell(t *testing.T) {
	_, err := execute(t, "env", "--shell", "powershell")
	require.Error(t, err)
}

func TestEnvCommandDefaultsToDetectedShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	out, err := execute(t, "env", "--path", "/opt/wasmedge")
	require.NoError(t, err)
	assert.Contains(t, out, "set -gx PATH")
}

func TestInstallRejectsUnsupportedTarget(t *testing.T) {
	_, err := execute(t, "install", "0.14.1", "--os", "windows")
	require.Error(t, err)
}

func TestRemoveRefusesWithoutConfirmation(t *testing.T) {
	// Non-interactive stdin and no --yes must refuse rather than delete
	_, err := execute(t, "remove", "--path", filepath.Join(t.TempDir(), ".wasmedge"))
	require.Error(t, err)
}

func TestCompletionGeneration(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "wasmedgeup")
}
