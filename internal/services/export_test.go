package services

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/domain"
	"framewright/internal/generator"
)

func newTestExportService(t *testing.T) (*ExportService, *fakeRepo) {
	t.Helper()
	svc, repo := newTestService()
	require.NoError(t, svc.SetIdentity(context.Background(), "Acme", "Users can log in", domain.ModeNew))
	return NewExportService(svc), repo
}

func TestWriteDir(t *testing.T) {
	export, repo := newTestExportService(t)
	dest := t.TempDir()

	count, err := export.WriteDir(context.Background(), dest)
	require.NoError(t, err)
	assert.Equal(t, generator.FileCount(repo.state), count)

	for _, path := range []string{
		"PRIME.md",
		"PROJECT.md",
		filepath.Join("docs", "CONVENTIONS.md"),
		filepath.Join(".github", "copilot-instructions.md"),
	} {
		data, err := os.ReadFile(filepath.Join(dest, path))
		require.NoError(t, err, "missing %s", path)
		assert.NotEmpty(t, data)
	}
}

func TestWriteZip(t *testing.T) {
	export, repo := newTestExportService(t)

	var buf bytes.Buffer
	count, err := export.WriteZip(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, generator.FileCount(repo.state), count)

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, count)

	names := make(map[string]bool, len(reader.File))
	for _, f := range reader.File {
		names[f.Name] = true
	}
	assert.True(t, names["acme-framework/PRIME.md"])
	assert.True(t, names["acme-framework/docs/ARCHITECTURE.md"])
}

func TestWriteZip_NoProject(t *testing.T) {
	svc, _ := newTestService()
	export := NewExportService(svc)

	var buf bytes.Buffer
	_, err := export.WriteZip(context.Background(), &buf)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
