// Package shell renders the environment fragments that register the
// WasmEdge bin and lib directories on PATH and LD_LIBRARY_PATH, and wires
// them into the user's shell profile. Two output dialects are supported:
// POSIX-family shells (sh, bash, zsh) and fish.
package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
)

// Dialect selects the output-format variant a fragment is rendered in
type Dialect string

const (
	DialectPOSIX Dialect = "posix"
	DialectFish  Dialect = "fish"
)

// ParseDialect parses a user-supplied shell name into a dialect. Any
// POSIX-family shell maps to DialectPOSIX.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "posix", "sh", "bash", "zsh", "ash", "dash":
		return DialectPOSIX, nil
	case "fish":
		return DialectFish, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown shell %q", s)
	}
}

// Detect returns the dialect for the user's login shell from $SHELL,
// defaulting to POSIX when unset or unrecognized.
func Detect() Dialect {
	name := filepath.Base(os.Getenv("SHELL"))
	if d, err := ParseDialect(name); err == nil {
		return d
	}
	return DialectPOSIX
}

// EnvScriptName returns the name of the env script this dialect sources
func (d Dialect) EnvScriptName() string {
	if d == DialectFish {
		return "env.fish"
	}
	return "env"
}

// SourceLine returns the profile line that sources the env script, guarded
// by a file-existence test so a removed installation does not break shell
// startup.
func (d Dialect) SourceLine(envScript string) string {
	if d == DialectFish {
		return fmt.Sprintf(`test -f "%s"; and source "%s" # wasmedgeup`, envScript, envScript)
	}
	return fmt.Sprintf(`[ -f "%s" ] && . "%s" # wasmedgeup`, envScript, envScript)
}

// ProfileCandidates returns the profile files this dialect may be sourced
// from, in order of preference. Only files that already exist are updated;
// the first candidate is created when none exist.
func (d Dialect) ProfileCandidates(home string) []string {
	if d == DialectFish {
		return []string{filepath.Join(home, ".config", "fish", "config.fish")}
	}
	return []string{
		filepath.Join(home, ".profile"),
		filepath.Join(home, ".bashrc"),
		filepath.Join(home, ".zshrc"),
	}
}

// Dialects lists every supported dialect
func Dialects() []Dialect {
	return []Dialect{DialectPOSIX, DialectFish}
}

func (d Dialect) String() string {
	return string(d)
}
