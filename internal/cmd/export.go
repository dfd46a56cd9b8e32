package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"framewright/internal/domain"
	"framewright/internal/logging"
)

// ExportCmd writes the generated framework to disk
type ExportCmd struct {
	Dest string `arg:"" optional:"" help:"Destination folder (or zip path with --zip). Defaults to <slug>-framework next to the current directory."`
	Zip  bool   `help:"Write a single zip archive instead of a folder"`
}

// Run performs the export
func (e *ExportCmd) Run(cli *CLI) error {
	defer cli.Close()

	ctx := context.Background()
	state, err := cli.Container.ProjectService.Load(ctx)
	if err != nil {
		return err
	}

	dest := e.Dest
	if dest == "" {
		dest = defaultExportDest(cli, state)
	}

	var files int
	if e.Zip {
		if !strings.HasSuffix(dest, ".zip") {
			dest += ".zip"
		}
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}
		defer f.Close()
		files, err = cli.Container.ExportService.WriteZip(ctx, f)
		if err != nil {
			return err
		}
	} else {
		files, err = cli.Container.ExportService.WriteDir(ctx, dest)
		if err != nil {
			return err
		}
	}

	logging.Logger.Info("Export complete", "dest", dest, "files", files)
	fmt.Printf("Exported %d files to %s\n", files, dest)
	return nil
}

func defaultExportDest(cli *CLI, state *domain.ProjectState) string {
	slug := state.Identity.Slug
	if slug == "" {
		slug = "project"
	}
	name := slug + "-framework"

	base := "."
	if cli.settings != nil && cli.settings.ExportDir != "" {
		base = cli.settings.ExportDir
	}
	return filepath.Join(base, name)
}
