package install

import (
	"os"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
	"github.com/Arshdeep54/wasmedgeup/pkg/shell"
)

// RemoveResult reports what a removal did
type RemoveResult struct {
	InstallDir       string
	Version          string
	ModifiedProfiles []string
}

// Remove deletes the installation at installDir and strips the env script
// source lines from every shell profile that references it. The profiles
// are cleaned first so a failed directory removal never leaves dangling
// source lines behind a successful one.
func Remove(home, installDir string) (*RemoveResult, error) {
	logger := logging.GetLogger("install")

	if _, err := os.Stat(installDir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "no installation at %s", installDir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "checking %s", installDir)
	}

	removedVersion := InstalledVersion(installDir)

	resolvedHome, err := resolveHome(home)
	if err != nil {
		return nil, err
	}
	modified, err := shell.UnregisterEnvScript(resolvedHome, installDir)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(installDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "removing %s", installDir)
	}

	logger.Info().
		Str("installDir", installDir).
		Str("version", removedVersion).
		Strs("profiles", modified).
		Msg("Installation removed")

	return &RemoveResult{
		InstallDir:       installDir,
		Version:          removedVersion,
		ModifiedProfiles: modified,
	}, nil
}
