// Package install orchestrates runtime installation: resolve the version,
// download and verify the release asset, unpack it into the install root,
// and register the environment fragments in the user's shell profile.
package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Arshdeep54/wasmedgeup/pkg/archive"
	"github.com/Arshdeep54/wasmedgeup/pkg/envpath"
	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
	"github.com/Arshdeep54/wasmedgeup/pkg/releases"
	"github.com/Arshdeep54/wasmedgeup/pkg/shell"
	"github.com/Arshdeep54/wasmedgeup/pkg/target"
	"github.com/hashicorp/go-version"
)

// receiptName is the marker file recording the installed version
const receiptName = ".wasmedgeup"

// Options controls a single installation
type Options struct {
	// Version is the version spec: "latest" or an explicit version
	Version string
	// InstallDir is the install root, e.g. $HOME/.wasmedge
	InstallDir string
	// TmpDir is the parent of the staging directory
	TmpDir string
	// Target is the OS/arch the asset is fetched for
	Target target.Target
	// Dialect selects which shell profile gets the source line; empty
	// means the detected login shell
	Dialect shell.Dialect
	// Home overrides the home directory used for profile lookup
	Home string
}

// Result reports what an installation did
type Result struct {
	Version          *version.Version
	InstallDir       string
	ModifiedProfiles []string
	// PathActive is true when the bin directory is already a PATH segment
	// of the current session, so no shell restart is needed
	PathActive bool
}

// Installer runs installations against a release client
type Installer struct {
	client *releases.Client
}

// New creates an Installer
func New(client *releases.Client) *Installer {
	return &Installer{client: client}
}

// Install resolves, downloads, verifies, unpacks, and registers a runtime
// version. The staging directory is removed on the way out regardless of
// outcome.
func (i *Installer) Install(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("install")

	v, err := i.client.Resolve(ctx, opts.Version)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("version", v.Original()).Msg("Resolved version for installation")

	asset := opts.Target.AssetName(v.Original())
	staging := filepath.Join(opts.TmpDir, strings.TrimSuffix(asset, ".tar.gz"))
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "creating staging directory %s", staging)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			logger.Warn().Err(err).Str("staging", staging).Msg("Failed to clean up staging directory")
		}
	}()

	expected, err := i.client.Checksum(ctx, v, asset)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("checksum", expected).Msg("Got release checksum")

	archivePath, err := i.client.Download(ctx, v, asset, staging)
	if err != nil {
		return nil, err
	}

	if err := releases.VerifyChecksum(archivePath, expected); err != nil {
		return nil, err
	}
	logger.Debug().Msg("Checksum verified")

	extractDir := filepath.Join(staging, "extracted")
	if err := archive.Unpack(archivePath, extractDir); err != nil {
		return nil, err
	}
	root, err := archive.Root(extractDir)
	if err != nil {
		return nil, err
	}

	if err := archive.CopyTree(root, opts.InstallDir); err != nil {
		return nil, err
	}
	logger.Debug().Str("installDir", opts.InstallDir).Msg("Runtime files copied")

	if err := writeEnvScripts(opts.InstallDir); err != nil {
		return nil, err
	}
	if err := writeReceipt(opts.InstallDir, v); err != nil {
		return nil, err
	}

	home, err := resolveHome(opts.Home)
	if err != nil {
		return nil, err
	}
	dialect := opts.Dialect
	if dialect == "" {
		dialect = shell.Detect()
	}
	envScript := filepath.Join(opts.InstallDir, dialect.EnvScriptName())
	modified, err := shell.RegisterEnvScript(home, dialect, envScript)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("version", v.Original()).
		Str("installDir", opts.InstallDir).
		Strs("profiles", modified).
		Msg("Installation completed")

	binDir := filepath.Join(opts.InstallDir, "bin")
	return &Result{
		Version:          v,
		InstallDir:       opts.InstallDir,
		ModifiedProfiles: modified,
		PathActive:       envpath.Contains(os.Getenv("PATH"), binDir, string(os.PathListSeparator)),
	}, nil
}

// writeEnvScripts renders and writes the env fragment for every dialect
// into the install root, substituting the bin and lib directories.
func writeEnvScripts(installDir string) error {
	binDir := filepath.Join(installDir, "bin")
	libDir := filepath.Join(installDir, "lib")

	for _, d := range shell.Dialects() {
		script, err := shell.RenderEnvScript(d, binDir, libDir)
		if err != nil {
			return err
		}
		path := filepath.Join(installDir, d.EnvScriptName())
		if err := os.WriteFile(path, []byte(script), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
		}
	}
	return nil
}

func writeReceipt(installDir string, v *version.Version) error {
	path := filepath.Join(installDir, receiptName)
	if err := os.WriteFile(path, []byte(v.Original()+"\n"), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing receipt %s", path)
	}
	return nil
}

// InstalledVersion reads the version recorded by a previous installation.
// An empty string means nothing is installed at installDir.
func InstalledVersion(installDir string) string {
	content, err := os.ReadFile(filepath.Join(installDir, receiptName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}

func resolveHome(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "resolving home directory")
	}
	return home, nil
}
