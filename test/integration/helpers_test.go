//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/processwire-skills/linkskills/internal/platform"
)

// testEnv holds the paths of one sandboxed repository.
type testEnv struct {
	RepoDir   string // repository root
	SkillsDir string // <repo>/.agents/skills
}

// setupTestEnv creates a repository with a populated shared skills directory
// and clears LINKSKILLS_* variables so the host environment cannot leak in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks not supported on this platform")
	}

	for _, v := range []string{"LINKSKILLS_TARGET", "LINKSKILLS_LINK_NAME", "LINKSKILLS_CONTAINERS", "LINKSKILLS_REQUIRES"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	repo := filepath.Join(t.TempDir(), "repo")
	env := &testEnv{
		RepoDir:   repo,
		SkillsDir: filepath.Join(repo, ".agents", "skills"),
	}

	writeFile(t, filepath.Join(env.SkillsDir, "processwire-api", "SKILL.md"), "# ProcessWire API\n")
	writeFile(t, filepath.Join(env.SkillsDir, "processwire-hooks", "SKILL.md"), "# Hooks\n")
	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

// assertSkillVisible fails unless the skill file is readable through the
// container's link.
func assertSkillVisible(t *testing.T, repo, container, skill string) {
	t.Helper()
	path := filepath.Join(repo, container, "skills", skill, "SKILL.md")
	if _, err := os.ReadFile(path); err != nil {
		t.Errorf("expected %s to be readable through the link: %v", path, err)
	}
}

// assertSymlink fails unless path is a symlink with the given link text.
func assertSymlink(t *testing.T, path, wantText string) {
	t.Helper()
	kind, err := platform.Inspect(path)
	if err != nil {
		t.Fatalf("inspecting %s: %v", path, err)
	}
	if kind != platform.KindSymlink {
		t.Fatalf("expected %s to be a symlink, found %s", path, kind)
	}
	text, err := platform.ReadSymlinkTarget(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if text != wantText {
		t.Errorf("%s -> %q, want %q", path, text, wantText)
	}
}
