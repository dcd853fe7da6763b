package main

import (
	"context"
	"os"

	"github.com/crateworks/setarch/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the command tree. A bare invocation starts the interactive
// session, same as the run subcommand.
func newApp(runner *Runner) *cli.Command {
	return &cli.Command{
		Name:    "setarch",
		Usage:   "Plan DJ sets: a bounded library, a growable crate and text reports",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action:   runner.Run,
		Commands: runner.register(),
	}
}
