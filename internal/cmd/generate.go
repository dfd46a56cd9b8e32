package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"framewright/internal/generator"
	"framewright/internal/theme"
)

// GenerateCmd prints one generated document to stdout
type GenerateCmd struct {
	Path string `arg:"" optional:"" help:"Document path to print (e.g. PROJECT.md, docs/SCHEMA.md). Defaults to PRIME.md."`
}

// Run prints the requested document
func (g *GenerateCmd) Run(cli *CLI) error {
	defer cli.Close()

	files, err := cli.Container.ProjectService.Generate(context.Background())
	if err != nil {
		return err
	}

	path := g.Path
	if path == "" {
		path = generator.PathPrime
	}

	for _, f := range files {
		if f.Path == path {
			fmt.Print(f.Content)
			return nil
		}
	}

	known := make([]string, 0, len(files))
	for _, f := range files {
		known = append(known, f.Path)
	}
	sort.Strings(known)
	fmt.Fprintf(os.Stderr, "Known documents:\n")
	for _, p := range known {
		fmt.Fprintf(os.Stderr, "  %s\n", p)
	}
	return fmt.Errorf("no generated document at %q", path)
}

// FilesCmd lists generated file paths with word counts
type FilesCmd struct{}

// Run lists all generated files
func (f *FilesCmd) Run(cli *CLI) error {
	defer cli.Close()

	files, err := cli.Container.ProjectService.Generate(context.Background())
	if err != nil {
		return err
	}

	total := 0
	for _, gf := range files {
		total += gf.WordCount
		fmt.Printf("%-45s %6d words\n", gf.Path, gf.WordCount)
	}
	fmt.Printf("\n%d files, %d words\n", len(files), total)
	return nil
}

// TreeCmd shows the generated file tree with word counts
type TreeCmd struct{}

// Run prints the file tree
func (t *TreeCmd) Run(cli *CLI) error {
	defer cli.Close()

	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}
	files := generator.GenerateAll(state, cli.Container.Catalog)

	words := make(map[string]int, len(files))
	for _, f := range files {
		words[f.Path] = f.WordCount
	}

	printTree(generator.BuildTree(generator.FrameworkFolderName(state), files), "", words)
	return nil
}

func printTree(n *generator.FileTreeNode, indent string, words map[string]int) {
	if n.Type == generator.NodeFolder {
		fmt.Println(indent + theme.FolderStyle.Render(n.Name+"/"))
		for _, c := range n.Children {
			printTree(c, indent+"  ", words)
		}
		return
	}

	line := indent + n.Name
	if w, ok := words[n.FilePath]; ok {
		line += fmt.Sprintf(" (%d words)", w)
	}
	fmt.Println(line)
}
