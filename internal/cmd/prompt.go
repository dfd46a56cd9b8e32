package cmd

import (
	"context"
	"fmt"

	"framewright/internal/domain"
	"framewright/internal/prompts"
)

// PromptCmd prints copy-paste prompt helpers for AI sessions
type PromptCmd struct {
	Conventions PromptConventionsCmd `cmd:"conventions" help:"Prompt asking an AI to draft project conventions"`
	Schema      PromptSchemaCmd      `cmd:"schema" help:"Prompt asking an AI to design the database schema"`
	Skeleton    PromptSkeletonCmd    `cmd:"skeleton" help:"Prompt for the task-000 skeleton deployment session"`
	Feature     PromptFeatureCmd     `cmd:"feature" help:"Prompt for implementing one feature"`
}

// PromptConventionsCmd prints the conventions drafting prompt
type PromptConventionsCmd struct{}

func (p *PromptConventionsCmd) Run(cli *CLI) error {
	defer cli.Close()
	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}
	fmt.Print(prompts.Conventions(state, cli.Container.Catalog))
	return nil
}

// PromptSchemaCmd prints the schema design prompt
type PromptSchemaCmd struct{}

func (p *PromptSchemaCmd) Run(cli *CLI) error {
	defer cli.Close()
	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}
	fmt.Print(prompts.Schema(state))
	return nil
}

// PromptSkeletonCmd prints the skeleton deployment prompt
type PromptSkeletonCmd struct{}

func (p *PromptSkeletonCmd) Run(cli *CLI) error {
	defer cli.Close()
	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}
	fmt.Print(prompts.Skeleton(state))
	return nil
}

// PromptFeatureCmd prints the feature implementation prompt
type PromptFeatureCmd struct {
	Feature string `arg:"" help:"Feature slug or name"`
}

func (p *PromptFeatureCmd) Run(cli *CLI) error {
	defer cli.Close()
	state, err := cli.Container.ProjectService.Load(context.Background())
	if err != nil {
		return err
	}

	for _, f := range state.Features {
		if f.Slug == p.Feature || f.Name == p.Feature || f.ID == p.Feature {
			fmt.Print(prompts.Feature(state, f.ID))
			return nil
		}
	}
	return fmt.Errorf("no feature named %q: %w", p.Feature, domain.ErrFeatureNotFound)
}
