package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"framewright/internal/cmd"
	"framewright/internal/config"
	"framewright/version"
)

func main() {
	// Settings are optional; a broken settings.json should not block startup
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("framewright"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
