package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
)

// RegisterEnvScript makes the user's shell source the env script on startup.
// Every existing profile candidate for the dialect gets the source line; when
// none exist the preferred candidate is created. Registration is idempotent
// at the profile level: a line that is already present is never duplicated.
// Returns the profile files that were modified.
func RegisterEnvScript(home string, d Dialect, envScript string) ([]string, error) {
	logger := logging.GetLogger("shell")
	line := d.SourceLine(envScript)

	candidates := d.ProfileCandidates(home)
	targets := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			targets = append(targets, path)
		}
	}
	if len(targets) == 0 {
		targets = candidates[:1]
	}

	var modified []string
	for _, path := range targets {
		changed, err := InstallSourceLine(path, line)
		if err != nil {
			return modified, err
		}
		if changed {
			logger.Info().Str("profile", path).Msg("Registered env script in shell profile")
			modified = append(modified, path)
		} else {
			logger.Debug().Str("profile", path).Msg("Env script already registered")
		}
	}
	return modified, nil
}

// UnregisterEnvScript removes every profile line referencing target from the
// candidates of all dialects. Missing profiles are skipped. Returns the
// profile files that were modified.
func UnregisterEnvScript(home, target string) ([]string, error) {
	logger := logging.GetLogger("shell")

	var modified []string
	for _, d := range Dialects() {
		for _, path := range d.ProfileCandidates(home) {
			changed, err := RemoveSourceLines(path, target)
			if err != nil {
				return modified, err
			}
			if changed {
				logger.Info().Str("profile", path).Msg("Removed env script from shell profile")
				modified = append(modified, path)
			}
		}
	}
	return modified, nil
}

// InstallSourceLine appends line to the profile at path unless an identical
// line is already present. The profile's parent directory must exist; a
// missing profile file is created.
func InstallSourceLine(path, line string) (bool, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return false, errors.Wrapf(err, errors.ErrProfileNotFound, "profile directory %s not found", dir)
	}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "reading profile %s", path)
	}
	if hasLine(string(content), line) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrProfileUpdate, "opening profile %s", path)
	}

	var b strings.Builder
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		b.WriteString("\n")
	}
	b.WriteString(line)
	b.WriteString("\n")

	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return false, errors.Wrapf(err, errors.ErrFileWrite, "writing profile %s", path)
	}
	if err := f.Close(); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "closing profile %s", path)
	}
	return true, nil
}

// RemoveSourceLines drops every line referencing target from the profile at
// path. A missing profile is not an error.
func RemoveSourceLines(path, target string) (bool, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "reading profile %s", path)
	}

	lines := strings.Split(string(content), "\n")
	kept := lines[:0]
	removed := false
	for _, l := range lines {
		if strings.Contains(l, target) {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrProfileUpdate, "rewriting profile %s", path)
	}
	return true, nil
}

func hasLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == strings.TrimSpace(line) {
			return true
		}
	}
	return false
}
