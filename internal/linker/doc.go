// Package linker reconciles the skills links of a repository. For every
// configured container directory it ensures the directory exists and holds a
// relative symlink to the shared skills directory, reports what it did per
// container, and never deletes anything that is not a symlink.
package linker
