// pkg/shell/fragment_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test env fragment rendering and placeholder substitution

package shell_test

import (
	"testing"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCarriesPlaceholders(t *testing.T) {
	for _, d := range shell.Dialects() {
		t.Run(d.String(), func(t *testing.T) {
			tmpl := shell.Template(d)
			assert.Contains(t, tmpl, shell.BinDirPlaceholder)
			assert.Contains(t, tmpl, shell.LibDirPlaceholder)
		})
	}
}

func TestRenderEnvScript(t *testing.T) {
	tests := []struct {
		name        string
		dialect     shell.Dialect
		mustContain []string
	}{
		{
			name:    "posix_registers_both_variables",
			dialect: shell.DialectPOSIX,
			mustContain: []string{
				`export PATH="/opt/wasmedge/bin${PATH:+:${PATH}}"`,
				`export LD_LIBRARY_PATH="/opt/wasmedge/lib${LD_LIBRARY_PATH:+:${LD_LIBRARY_PATH}}"`,
				`*:"/opt/wasmedge/bin":*`,
				`*:"/opt/wasmedge/lib":*`,
			},
		},
		{
			name:    "fish_registers_both_variables",
			dialect: shell.DialectFish,
			mustContain: []string{
				`if not contains "/opt/wasmedge/bin" $PATH`,
				`set -gx PATH "/opt/wasmedge/bin" $PATH`,
				`set -gx LD_LIBRARY_PATH "/opt/wasmedge/lib" $LD_LIBRARY_PATH`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := shell.RenderEnvScript(tt.dialect, "/opt/wasmedge/bin", "/opt/wasmedge/lib")
			require.NoError(t, err)

			for _, want := range tt.mustContain {
				assert.Contains(t, script, want)
			}
			assert.NotContains(t, script, shell.BinDirPlaceholder)
			assert.NotContains(t, script, shell.LibDirPlaceholder)
		})
	}
}

func TestRenderEnvScriptMissingValues(t *testing.T) {
	_, err := shell.RenderEnvScript(shell.DialectPOSIX, "", "/opt/wasmedge/lib")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = shell.RenderEnvScript(shell.DialectFish, "/opt/wasmedge/bin", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected shell.Dialect
		wantErr  bool
	}{
		{name: "bash_is_posix", input: "bash", expected: shell.DialectPOSIX},
		{name: "zsh_is_posix", input: "zsh", expected: shell.DialectPOSIX},
		{name: "sh_is_posix", input: "sh", expected: shell.DialectPOSIX},
		{name: "fish", input: "fish", expected: shell.DialectFish},
		{name: "unknown_is_an_error", input: "powershell", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := shell.ParseDialect(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		shellEnv string
		expected shell.Dialect
	}{
		{name: "fish_login_shell", shellEnv: "/usr/bin/fish", expected: shell.DialectFish},
		{name: "bash_login_shell", shellEnv: "/bin/bash", expected: shell.DialectPOSIX},
		{name: "unset_defaults_to_posix", shellEnv: "", expected: shell.DialectPOSIX},
		{name: "exotic_defaults_to_posix", shellEnv: "/usr/bin/nu", expected: shell.DialectPOSIX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shellEnv)
			assert.Equal(t, tt.expected, shell.Detect())
		})
	}
}

func TestEnvScriptName(t *testing.T) {
	assert.Equal(t, "env", shell.DialectPOSIX.EnvScriptName())
	assert.Equal(t, "env.fish", shell.DialectFish.EnvScriptName())
}
