package shell

import (
	_ "embed"
	"strings"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
)

// Template placeholders substituted at generation time. They are literal
// substring tokens, replaced with absolute paths before the fragment is
// sourced.
const (
	BinDirPlaceholder = "{WASMEDGE_BIN_DIR}"
	LibDirPlaceholder = "{WASMEDGE_LIB_DIR}"
)

//go:embed templates/env.sh
var posixTemplate string

//go:embed templates/env.fish
var fishTemplate string

// Template returns the raw fragment template for the dialect, with the
// placeholders still in place.
func Template(d Dialect) string {
	if d == DialectFish {
		return fishTemplate
	}
	return posixTemplate
}

// RenderEnvScript substitutes the bin and lib directory placeholders into
// the dialect's fragment template. The fragment registers binDir on PATH
// and libDir on LD_LIBRARY_PATH, each only when not already present as an
// exact segment, so sourcing it repeatedly never accumulates duplicates.
//
// Missing substitution values are generator-side errors; the fragment
// itself has no failure modes.
func RenderEnvScript(d Dialect, binDir, libDir string) (string, error) {
	if binDir == "" {
		return "", errors.New(errors.ErrInvalidInput, "bin directory substitution value is empty")
	}
	if libDir == "" {
		return "", errors.New(errors.ErrInvalidInput, "lib directory substitution value is empty")
	}

	script := Template(d)
	script = strings.ReplaceAll(script, BinDirPlaceholder, binDir)
	script = strings.ReplaceAll(script, LibDirPlaceholder, libDir)
	return script, nil
}
