// Package archive unpacks downloaded release tarballs and merges the
// extracted tree into the install root.
package archive

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
	slug "github.com/hashicorp/go-slug"
)

// Unpack extracts the tar.gz archive at archivePath into dst, creating dst
// if needed. Entries escaping dst are rejected by the unpacker.
func Unpack(archivePath, dst string) error {
	logger := logging.GetLogger("archive")

	f, err := os.Open(archivePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "opening %s", archivePath)
	}
	defer func() { _ = f.Close() }()

	if err := os.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", dst)
	}

	if err := slug.Unpack(f, dst); err != nil {
		return errors.Wrapf(err, errors.ErrExtract, "extracting %s", archivePath)
	}

	logger.Debug().Str("archive", archivePath).Str("dest", dst).Msg("Archive extracted")
	return nil
}

// Root returns the effective root of an extracted tree. Release tarballs
// wrap their content in a single versioned directory; when dir contains
// exactly one subdirectory and nothing else, that subdirectory is the root.
func Root(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "reading %s", dir)
	}
	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(dir, entries[0].Name()), nil
	}
	return dir, nil
}

// CopyTree merges the tree rooted at src into dst, creating directories as
// needed, preserving file modes, and recreating symlinks. Existing files
// are overwritten.
func CopyTree(src, dst string) error {
	logger := logging.GetLogger("archive")

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "walking %s", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "relativizing %s", path)
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", target)
			}
		case d.Type()&fs.ModeSymlink != 0:
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "reading link %s", path)
			}
			_ = os.Remove(target)
			if err := os.Symlink(linkTarget, target); err != nil {
				return errors.Wrapf(err, errors.ErrFileCreate, "linking %s", target)
			}
		default:
			if err := copyFile(path, target, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug().Str("src", src).Str("dest", dst).Msg("Tree copied")
	return nil
}

func copyFile(src, dst string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "stating %s", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "opening %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "creating %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "copying to %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "closing %s", dst)
	}
	// Re-apply perms for files that already existed with different modes
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "setting mode on %s", dst)
	}
	return nil
}
