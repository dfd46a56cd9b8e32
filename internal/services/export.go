package services

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"framewright/internal/generator"
	"framewright/internal/logging"
)

// ExportService writes generated documents to disk or to a zip archive
type ExportService struct {
	projects *ProjectService
}

// NewExportService creates a new ExportService
func NewExportService(projects *ProjectService) *ExportService {
	return &ExportService{projects: projects}
}

// WriteDir generates all documents and writes them under destDir,
// creating subdirectories as needed. Files are written concurrently;
// the first error cancels the rest.
func (s *ExportService) WriteDir(ctx context.Context, destDir string) (int, error) {
	files, err := s.projects.Generate(ctx)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(destDir, filepath.FromSlash(f.Path))
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
			}
			if err := os.WriteFile(target, []byte(f.Content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.Path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	logging.Logger.Info("Exported project documents", "dir", destDir, "files", len(files))
	return len(files), nil
}

// WriteZip generates all documents and writes them to w as a zip
// archive. Entries are nested under a "<slug>-framework" folder so the
// archive unpacks cleanly.
func (s *ExportService) WriteZip(ctx context.Context, w io.Writer) (int, error) {
	state, err := s.projects.Load(ctx)
	if err != nil {
		return 0, err
	}
	files := generator.GenerateAll(state, s.projects.Catalog())

	zw := zip.NewWriter(w)
	folder := generator.FrameworkFolderName(state)
	for _, f := range files {
		entry, err := zw.Create(folder + "/" + f.Path)
		if err != nil {
			return 0, fmt.Errorf("failed to create zip entry %s: %w", f.Path, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			return 0, fmt.Errorf("failed to write zip entry %s: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize zip archive: %w", err)
	}

	return len(files), nil
}
