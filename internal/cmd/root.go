package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"framewright/internal/config"
	"framewright/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the framewright wizard TUI (default)" default:"1"`
	Generate GenerateCmd `cmd:"generate" help:"Print a generated document to stdout"`
	Export   ExportCmd   `cmd:"export" help:"Write the generated framework to a folder or zip"`
	Tree     TreeCmd     `cmd:"tree" help:"Show the generated file tree with word counts"`
	Files    FilesCmd    `cmd:"files" help:"List generated file paths with word counts"`
	Prompt   PromptCmd   `cmd:"prompt" help:"Print an AI session prompt helper"`
	Project  ProjectCmd  `cmd:"project" help:"Manage the stored project (show, reset, import, export)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FRAMEWRIGHT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FRAMEWRIGHT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Propagate debug settings so child processes append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FRAMEWRIGHT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FRAMEWRIGHT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FRAMEWRIGHT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM's logger
	// always has a working logging.Logger
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
