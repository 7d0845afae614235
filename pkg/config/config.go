// Package config loads wasmedgeup settings from layered sources: embedded
// defaults, the user config file, and WASMEDGEUP_* environment variables,
// in increasing order of precedence.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	werrors "github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Settings is the resolved configuration
type Settings struct {
	InstallDir string          `koanf:"install_dir"`
	TmpDir     string          `koanf:"tmpdir"`
	NoProgress bool            `koanf:"no_progress"`
	Releases   ReleaseSettings `koanf:"releases"`
}

// ReleaseSettings configures where releases and assets are fetched from
type ReleaseSettings struct {
	APIURL      string `koanf:"api_url"`
	DownloadURL string `koanf:"download_url"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves settings from defaults, the user config file, and the
// environment. Empty install/tmp dirs are filled in with their platform
// defaults.
func Load() (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "loading defaults")
	}

	// 2. User config file, TOML preferred, YAML accepted
	configDir := filepath.Join(xdg.ConfigHome, "wasmedgeup")
	candidates := []struct {
		path   string
		parser koanf.Parser
	}{
		{filepath.Join(configDir, "config.toml"), toml.Parser()},
		{filepath.Join(configDir, "config.yaml"), yaml.Parser()},
	}
	for _, c := range candidates {
		if _, err := os.Stat(c.path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(c.path), c.parser); err != nil {
			return nil, werrors.Wrapf(err, werrors.ErrConfigParse, "loading config from %s", c.path)
		}
		break
	}

	// 3. Environment overrides. Double underscore separates nesting levels
	// so single underscores survive in key names:
	// WASMEDGEUP_RELEASES__API_URL -> releases.api_url
	err := k.Load(env.Provider("WASMEDGEUP_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "WASMEDGEUP_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "loading environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, werrors.Wrap(err, werrors.ErrConfigParse, "unmarshaling settings")
	}

	if settings.InstallDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "resolving home directory")
		}
		settings.InstallDir = filepath.Join(home, ".wasmedge")
	}
	if settings.TmpDir == "" {
		settings.TmpDir = os.TempDir()
	}

	return &settings, nil
}
