package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/crateworks/setarch/internal/collection"
	"github.com/crateworks/setarch/internal/library"
	"github.com/crateworks/setarch/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The library and the crate are session state: they live for one process and
// only the text reports outlive it.
type Runner struct {
	config  *shared.Config
	logger  *log.Logger
	output  io.Writer
	library *library.Library
	crate   *collection.Crate
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	logger := shared.WithLogger(opts.Logger, "session", shared.GenerateID())

	return &Runner{
		config:  opts.Config,
		logger:  logger,
		output:  opts.Output,
		library: library.New(opts.Config.Library.MaxTracks),
		crate:   collection.NewCrate(opts.Config.Crate.InitialCapacity),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		runCommand, browseCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// reloadConfig swaps in the config at path and resizes the empty session state
// to match. State already accumulated in the session is kept as-is.
func (r *Runner) reloadConfig(path string) {
	loaded, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warnf("keeping current config: %v", err)
		return
	}

	r.config = loaded
	if r.library.Len() == 0 {
		r.library = library.New(loaded.Library.MaxTracks)
	}
	if r.crate.Size() == 0 {
		r.crate = collection.NewCrate(loaded.Crate.InitialCapacity)
	}
}
