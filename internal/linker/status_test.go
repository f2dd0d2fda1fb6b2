package linker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	r := newTestRepo(t, t.TempDir(), ".claude", ".cline", ".codex", ".cursor", ".kimi")

	// .claude: ok after link.
	_, err := r.linker.Link(context.Background())
	require.NoError(t, err)

	// .cline: link removed, container kept.
	require.NoError(t, os.Remove(filepath.Join(r.root, ".cline", "skills")))
	// .codex: container removed entirely.
	require.NoError(t, os.RemoveAll(filepath.Join(r.root, ".codex")))
	// .cursor: replaced by a real directory.
	require.NoError(t, os.Remove(filepath.Join(r.root, ".cursor", "skills")))
	require.NoError(t, os.Mkdir(filepath.Join(r.root, ".cursor", "skills"), 0755))
	// .kimi: points somewhere else.
	require.NoError(t, os.Remove(filepath.Join(r.root, ".kimi", "skills")))
	require.NoError(t, os.Symlink("../other", filepath.Join(r.root, ".kimi", "skills")))

	statuses := r.linker.Status()
	require.Len(t, statuses, 5)

	byContainer := map[string]LinkStatus{}
	for _, s := range statuses {
		byContainer[s.Container] = s
	}

	assert.Equal(t, StateOK, byContainer[".claude"].State)
	assert.Equal(t, "../.agents/skills", byContainer[".claude"].LinkText)
	assert.Equal(t, StateMissing, byContainer[".cline"].State)
	assert.Equal(t, "link does not exist", byContainer[".cline"].Detail)
	assert.Equal(t, StateMissing, byContainer[".codex"].State)
	assert.Equal(t, "container directory does not exist", byContainer[".codex"].Detail)
	assert.Equal(t, StateBlocked, byContainer[".cursor"].State)
	assert.Equal(t, StateWrongTarget, byContainer[".kimi"].State)
	assert.Equal(t, "../other", byContainer[".kimi"].LinkText)

	assert.False(t, Healthy(statuses))
}

func TestStatusDangling(t *testing.T) {
	r := newTestRepo(t, t.TempDir(), ".claude")

	_, err := r.linker.Link(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(filepath.Join(r.root, ".agents")))

	statuses := r.linker.Status()
	require.Len(t, statuses, 1)
	assert.Equal(t, StateDangling, statuses[0].State)
}

func TestStatusHealthy(t *testing.T) {
	r := newTestRepo(t, t.TempDir(), ".claude", ".cline")

	_, err := r.linker.Link(context.Background())
	require.NoError(t, err)

	assert.True(t, Healthy(r.linker.Status()))
}

func TestStatusSymlinkedContainerLexicalLink(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "repo")
	r := newTestRepo(t, root, ".claude")
	symlinkedContainer(t, tmp, root, ".claude")

	// Resolved from the real container this lands in home/.agents/skills.
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "home", ".agents", "skills"), 0755))
	require.NoError(t, os.Symlink(filepath.Join("..", ".agents", "skills"), filepath.Join(root, ".claude", "skills")))

	statuses := r.linker.Status()
	require.Len(t, statuses, 1)
	assert.Equal(t, StateWrongTarget, statuses[0].State)
	assert.Equal(t, "../.agents/skills", statuses[0].LinkText)
	assert.False(t, Healthy(statuses))

	// Link repairs it.
	_, err := r.linker.Link(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateOK, r.linker.Status()[0].State)
}
