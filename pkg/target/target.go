// Package target identifies the OS and architecture a WasmEdge release
// asset is built for, with auto-detection of the host.
package target

import (
	"fmt"
	"runtime"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
)

// OS is a supported operating system for the runtime
type OS string

const (
	OSLinux  OS = "linux"
	OSDarwin OS = "darwin"
)

// Arch is a supported CPU architecture for the runtime
type Arch string

const (
	ArchX8664   Arch = "x86_64"
	ArchAarch64 Arch = "aarch64"
)

// Target is an OS and architecture pair a release asset is named after
type Target struct {
	OS   OS
	Arch Arch
}

// ParseOS parses a user-supplied OS name
func ParseOS(s string) (OS, error) {
	switch s {
	case "linux":
		return OSLinux, nil
	case "darwin", "macos":
		return OSDarwin, nil
	default:
		return "", errors.Newf(errors.ErrTargetUnsupported, "unsupported OS %q", s)
	}
}

// ParseArch parses a user-supplied architecture name. Both the Go names
// (amd64, arm64) and the release-asset names (x86_64, aarch64) are accepted.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "x86_64", "amd64":
		return ArchX8664, nil
	case "aarch64", "arm64":
		return ArchAarch64, nil
	default:
		return "", errors.Newf(errors.ErrTargetUnsupported, "unsupported architecture %q", s)
	}
}

// DetectOS returns the host OS
func DetectOS() (OS, error) {
	return ParseOS(runtime.GOOS)
}

// DetectArch returns the host architecture
func DetectArch() (Arch, error) {
	return ParseArch(runtime.GOARCH)
}

// Detect returns the host target
func Detect() (Target, error) {
	os, err := DetectOS()
	if err != nil {
		return Target{}, err
	}
	arch, err := DetectArch()
	if err != nil {
		return Target{}, err
	}
	return Target{OS: os, Arch: arch}, nil
}

// AssetName returns the release tarball name for the given version,
// following the upstream naming convention, e.g.
// WasmEdge-0.14.1-manylinux2014_x86_64.tar.gz
func (t Target) AssetName(version string) string {
	return fmt.Sprintf("WasmEdge-%s-%s.tar.gz", version, t.assetSuffix())
}

func (t Target) assetSuffix() string {
	switch t.OS {
	case OSDarwin:
		// Upstream darwin assets use the Go spelling for arm
		arch := string(t.Arch)
		if t.Arch == ArchAarch64 {
			arch = "arm64"
		}
		return "darwin_" + arch
	default:
		return "manylinux2014_" + string(t.Arch)
	}
}
