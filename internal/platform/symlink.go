package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DirPerm is the mode used for directories created on behalf of the user.
const DirPerm os.FileMode = 0755

// ErrSymlinkUnsupported is returned when the platform refuses to create symlinks.
var ErrSymlinkUnsupported = errors.New("symlinks are not supported on this system")

// Kind classifies a filesystem entry without following symlinks.
type Kind int

const (
	// KindMissing means nothing exists at the path.
	KindMissing Kind = iota
	// KindSymlink is a symbolic link, dangling or not.
	KindSymlink
	// KindDir is a real directory.
	KindDir
	// KindFile is a regular file or any other non-directory entry.
	KindFile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindSymlink:
		return "symlink"
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Inspect reports what occupies path. A missing entry is not an error.
func Inspect(path string) (Kind, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return KindMissing, nil
	}
	if err != nil {
		return KindMissing, err
	}

	switch mode := info.Mode(); {
	case mode&os.ModeSymlink != 0:
		return KindSymlink, nil
	case mode.IsDir():
		return KindDir, nil
	default:
		return KindFile, nil
	}
}

// EnsureDir creates path and any missing parents. An existing directory is
// left alone; an existing non-directory is an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	return nil
}

// CreateSymlink creates a symbolic link at link whose text is target.
// The target is written verbatim; relative targets resolve against the
// directory containing link.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		if runtime.GOOS == "windows" && !IsSymlinkSupported() {
			return fmt.Errorf("%w: %v", ErrSymlinkUnsupported, err)
		}
		return err
	}
	return nil
}

// RemoveSymlink removes the symlink at path. It refuses to remove anything
// that is not a symlink.
func RemoveSymlink(path string) error {
	kind, err := Inspect(path)
	if err != nil {
		return err
	}
	if kind != KindSymlink {
		return fmt.Errorf("refusing to remove %s: it is a %s, not a symlink", path, kind)
	}
	return os.Remove(path)
}

// ReadSymlinkTarget returns the raw link text of the symlink at path.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// ResolveSymlink returns the real path the symlink at path points to. The
// link text is resolved against the real directory holding the link, as the
// OS does, so a link inside a symlinked directory resolves correctly. The
// target is not required to exist.
func ResolveSymlink(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		dir, err := RealPath(filepath.Dir(path))
		if err != nil {
			return "", err
		}
		target = filepath.Join(dir, target)
	}
	return RealPath(target)
}

// RealPath returns the absolute path of p with every symlink resolved. When
// the tail of p does not exist, the longest existing prefix is resolved and
// the missing components are appended unchanged.
func RealPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	rest := ""
	for {
		real, err := filepath.EvalSymlinks(abs)
		if err == nil {
			return filepath.Join(real, rest), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return filepath.Join(abs, rest), nil
		}
		rest = filepath.Join(filepath.Base(abs), rest)
		abs = parent
	}
}

// RelativeTarget returns the link text that, written into linkDir, points
// at target. Both paths must be absolute or both relative to the same base.
func RelativeTarget(linkDir, target string) (string, error) {
	rel, err := filepath.Rel(linkDir, target)
	if err != nil {
		return "", fmt.Errorf("computing link from %s to %s: %w", linkDir, target, err)
	}
	return rel, nil
}

// IsSymlinkSupported returns true if the current platform can create native
// symlinks. On Windows this creates a throwaway link to test for developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	dir, err := os.MkdirTemp("", "linkskills-symlink-check-")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	return os.Symlink(dir, filepath.Join(dir, "link")) == nil
}
