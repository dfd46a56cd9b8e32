package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/generator"
)

// newTestCLI builds a CLI backed by a Container on the test home dir.
// Command Run methods close the container, so callers needing further
// access build a fresh one.
func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	container, err := NewContainer()
	require.NoError(t, err)
	return &CLI{Container: container}
}

func TestProjectOverrideCmd_SetAndClear(t *testing.T) {
	t.Setenv("FRAMEWRIGHT_HOME", t.TempDir())

	cli := newTestCLI(t)
	_, err := cli.Container.ProjectService.LoadOrCreate(context.Background())
	require.NoError(t, err)
	require.NoError(t, cli.Close())

	contentPath := filepath.Join(t.TempDir(), "project.md")
	require.NoError(t, os.WriteFile(contentPath, []byte("# Pinned\n"), 0644))

	override := &ProjectOverrideCmd{Path: generator.PathProject, File: contentPath}
	require.NoError(t, override.Run(newTestCLI(t)))

	cli = newTestCLI(t)
	files, err := cli.Container.ProjectService.Generate(context.Background())
	require.NoError(t, err)
	content := contentFor(t, files, generator.PathProject)
	assert.Equal(t, "# Pinned\n", content, "overridden document must export verbatim")
	require.NoError(t, cli.Close())

	clear := &ProjectOverrideCmd{Path: generator.PathProject, Clear: true}
	require.NoError(t, clear.Run(newTestCLI(t)))

	cli = newTestCLI(t)
	files, err = cli.Container.ProjectService.Generate(context.Background())
	require.NoError(t, err)
	content = contentFor(t, files, generator.PathProject)
	assert.NotEqual(t, "# Pinned\n", content, "cleared override must render fresh again")
	require.NoError(t, cli.Close())
}

func TestProjectOverrideCmd_RejectsUnknownPath(t *testing.T) {
	t.Setenv("FRAMEWRIGHT_HOME", t.TempDir())

	cli := newTestCLI(t)
	_, err := cli.Container.ProjectService.LoadOrCreate(context.Background())
	require.NoError(t, err)
	require.NoError(t, cli.Close())

	contentPath := filepath.Join(t.TempDir(), "x.md")
	require.NoError(t, os.WriteFile(contentPath, []byte("x"), 0644))

	override := &ProjectOverrideCmd{Path: "docs/NOPE.md", File: contentPath}
	err = override.Run(newTestCLI(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs/NOPE.md")
}

func contentFor(t *testing.T, files []generator.GeneratedFile, path string) string {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f.Content
		}
	}
	t.Fatalf("no generated file at %s", path)
	return ""
}
