// Package platform wraps the filesystem primitives the linker needs: entry
// kind detection without following links, symlink creation and removal, and
// relative link text computation. On Windows symlink creation requires
// developer mode; when it is unavailable CreateSymlink returns
// ErrSymlinkUnsupported instead of falling back to a copy, because the link
// target is a directory tree that must stay shared.
package platform
