// Package config resolves the link configuration for a repository: the shared
// target directory, the link name, and the container directories that receive
// the link. Values come from compiled-in defaults, an optional project file
// (.linkskills.yaml in the repository root), and LINKSKILLS_* environment
// variables, in increasing order of precedence.
package config
