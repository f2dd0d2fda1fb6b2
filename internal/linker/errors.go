package linker

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a container could not be reconciled.
type FailureKind string

const (
	DirectoryCreation FailureKind = "directory-creation"
	BlockedLinkPath   FailureKind = "blocked-link-path"
	LinkCreation      FailureKind = "link-creation"
	LinkRemoval       FailureKind = "link-removal"
)

// Sentinels matched by errors.Is against a *LinkError.
var (
	ErrDirectoryCreation = errors.New("cannot create container directory")
	ErrBlockedLinkPath   = errors.New("blocked by an existing entry that is not a symlink")
	ErrLinkCreation      = errors.New("cannot create symlink")
	ErrLinkRemoval       = errors.New("cannot remove symlink")
)

func (k FailureKind) sentinel() error {
	switch k {
	case DirectoryCreation:
		return ErrDirectoryCreation
	case BlockedLinkPath:
		return ErrBlockedLinkPath
	case LinkCreation:
		return ErrLinkCreation
	case LinkRemoval:
		return ErrLinkRemoval
	default:
		return nil
	}
}

// LinkError is the failure of one container.
type LinkError struct {
	Container string
	Path      string // display path, e.g. ".claude/skills"
	Kind      FailureKind
	Err       error
}

func (e *LinkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind.sentinel())
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind.sentinel(), e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *LinkError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
