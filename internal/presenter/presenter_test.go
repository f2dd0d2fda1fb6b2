package presenter

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewWithOptions(&out, &errOut, ColorNever)

	p.Line(StatusCreated, ".claude/skills -> ../.agents/skills")
	p.Line(StatusRemoved, ".cline/skills")
	p.Line(StatusFailed, ".kimi/skills: boom")
	p.Summary("Done! Created 1 symlinks.")

	assert.Equal(t, "Created: .claude/skills -> ../.agents/skills\nRemoved: .cline/skills\nDone! Created 1 symlinks.\n", out.String())
	assert.Equal(t, "Failed: .kimi/skills: boom\n", errOut.String())
}

func TestLineColored(t *testing.T) {
	var out bytes.Buffer
	p := NewWithOptions(&out, &out, ColorAlways)

	p.Line(StatusCreated, "x")
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Created:")
}

func TestDetectColorMode(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("LINKSKILLS_COLOR", "")
	assert.Equal(t, ColorAuto, detectColorMode())

	t.Setenv("LINKSKILLS_COLOR", "never")
	assert.Equal(t, ColorNever, detectColorMode())

	t.Setenv("LINKSKILLS_COLOR", "always")
	assert.Equal(t, ColorAlways, detectColorMode())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ColorNever, detectColorMode())
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	file, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	assert.False(t, useColor(ColorAuto, &buf), "non-file writers are never coloured")
	assert.False(t, useColor(ColorAuto, file), "regular files are not terminals")
	assert.True(t, useColor(ColorAlways, file))
	assert.False(t, useColor(ColorNever, file))
}

func TestStreamsColoredIndependently(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewWithOptions(&out, &errOut, ColorAuto)
	// Force colour on the output stream only, as when stdout is a TTY.
	p.created.EnableColor()

	p.Line(StatusCreated, "x")
	p.Line(StatusFailed, "y")

	assert.Contains(t, out.String(), "\x1b[")
	assert.Equal(t, "Failed: y\n", errOut.String())
}

func TestNewRedirectedErrorStreamIsPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("LINKSKILLS_COLOR", "")

	errFile, err := os.CreateTemp(t.TempDir(), "err")
	require.NoError(t, err)
	t.Cleanup(func() { errFile.Close() })

	var out bytes.Buffer
	p := New(&out, errFile)
	p.Line(StatusFailed, ".claude/skills: blocked")
	require.NoError(t, errFile.Sync())

	data, err := os.ReadFile(errFile.Name())
	require.NoError(t, err)
	assert.Equal(t, "Failed: .claude/skills: blocked\n", string(data))
}
