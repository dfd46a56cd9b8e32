package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"framewright/internal/adapters/projfile"
	"framewright/internal/catalog"
	"framewright/internal/generator"
)

// ProjectCmd manages the stored project
type ProjectCmd struct {
	Show     ProjectShowCmd     `cmd:"show" help:"Show a summary of the stored project"`
	Reset    ProjectResetCmd    `cmd:"reset" help:"Delete the stored project"`
	Import   ProjectImportCmd   `cmd:"import" help:"Replace the stored project from a YAML project file"`
	Export   ProjectExportCmd   `cmd:"export" help:"Write the stored project to a YAML project file"`
	Override ProjectOverrideCmd `cmd:"override" help:"Pin a generated document to hand-edited content"`
}

// ProjectShowCmd prints a project summary
type ProjectShowCmd struct{}

func (p *ProjectShowCmd) Run(cli *CLI) error {
	defer cli.Close()
	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Project:   %s (%s)\n", state.Identity.Name, state.Identity.Slug)
	fmt.Printf("Purpose:   %s\n", state.Identity.Purpose)
	fmt.Printf("Mode:      %s\n", state.Identity.ProjectMode)
	fmt.Printf("Framework: %s\n", catalog.TechLabel("framework", state.Identity.TechStack.Framework))
	fmt.Printf("Step:      %d (highest reached %d)\n", state.Meta.CurrentStep, state.Meta.HighestStepReached)
	fmt.Printf("Features:  %d\n", len(state.Features))
	fmt.Printf("Tasks:     %d\n", len(state.Tasks))
	fmt.Printf("Overrides: %d\n", len(state.MarkdownOverrides))
	fmt.Printf("Documents: %d\n", generator.FileCount(state))
	fmt.Printf("Updated:   %s\n", state.Meta.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// ProjectResetCmd deletes the stored project
type ProjectResetCmd struct {
	Force bool `help:"Skip confirmation" short:"f"`
}

func (p *ProjectResetCmd) Run(cli *CLI) error {
	defer cli.Close()

	if !p.Force {
		fmt.Print("This deletes the stored project and all its answers. Type 'yes' to continue: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := cli.Container.ProjectService.Reset(context.Background()); err != nil {
		return err
	}
	fmt.Println("Project deleted.")
	return nil
}

// ProjectImportCmd replaces the stored project from a YAML file
type ProjectImportCmd struct {
	File string `arg:"" help:"Path to a project YAML file" type:"existingfile"`
}

func (p *ProjectImportCmd) Run(cli *CLI) error {
	defer cli.Close()

	f, err := os.Open(p.File)
	if err != nil {
		return fmt.Errorf("failed to open project file: %w", err)
	}
	defer f.Close()

	state, err := projfile.Decode(f)
	if err != nil {
		return fmt.Errorf("invalid project file: %w", err)
	}

	if err := cli.Container.ProjectService.ImportState(context.Background(), state); err != nil {
		return err
	}
	fmt.Printf("Imported %q from %s\n", state.Identity.Name, p.File)
	return nil
}

// ProjectOverrideCmd pins a generated document to hand-edited content.
// Overridden documents export verbatim until the override is cleared.
type ProjectOverrideCmd struct {
	Path  string `arg:"" help:"Generated document path (e.g. PROJECT.md, docs/SCHEMA.md)"`
	File  string `arg:"" optional:"" help:"File holding the replacement content; omit to read stdin" type:"existingfile"`
	Clear bool   `help:"Remove the override so the document renders fresh again"`
}

func (p *ProjectOverrideCmd) Run(cli *CLI) error {
	defer cli.Close()
	ctx := context.Background()

	files, err := cli.Container.ProjectService.Generate(ctx)
	if err != nil {
		return err
	}
	known := false
	for _, f := range files {
		if f.Path == p.Path {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("no generated document at %q (run 'framewright files' to list them)", p.Path)
	}

	if p.Clear {
		if err := cli.Container.ProjectService.SetOverride(ctx, p.Path, ""); err != nil {
			return err
		}
		fmt.Printf("Cleared override for %s\n", p.Path)
		return nil
	}

	var content []byte
	if p.File != "" {
		content, err = os.ReadFile(p.File)
	} else {
		content, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read override content: %w", err)
	}
	if len(content) == 0 {
		return fmt.Errorf("override content is empty; use --clear to remove an override")
	}

	if err := cli.Container.ProjectService.SetOverride(ctx, p.Path, string(content)); err != nil {
		return err
	}
	fmt.Printf("Overrode %s (%d bytes)\n", p.Path, len(content))
	return nil
}

// ProjectExportCmd writes the stored project to a YAML file
type ProjectExportCmd struct {
	File string `arg:"" help:"Destination path for the project YAML file"`
}

func (p *ProjectExportCmd) Run(cli *CLI) error {
	defer cli.Close()

	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}

	f, err := os.Create(p.File)
	if err != nil {
		return fmt.Errorf("failed to create project file: %w", err)
	}
	defer f.Close()

	if err := projfile.Encode(f, state); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", p.File)
	return nil
}
