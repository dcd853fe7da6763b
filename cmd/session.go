package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/crateworks/setarch/internal/formatter"
	"github.com/crateworks/setarch/internal/models"
	"github.com/crateworks/setarch/internal/prompt"
	"github.com/crateworks/setarch/internal/shared"
	"github.com/crateworks/setarch/internal/ui"
)

// Run drives the interactive session: banner, then the menu loop until quit.
func (r *Runner) Run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err == nil {
			r.reloadConfig(path)
		}
	}

	if err := r.writePlain("%s\n\n", ui.Banner()); err != nil {
		return err
	}
	r.logger.Info("session started", "library_max", r.library.Max(), "crate_capacity", r.crate.Capacity())

	for {
		choice, err := prompt.MenuChoice()
		if err != nil {
			return err
		}

		if choice == prompt.ActionQuit {
			return r.writePlainln("Goodbye! Keep the crowd moving.")
		}

		if err := r.dispatch(choice); err != nil {
			return err
		}
	}
}

// dispatch executes a single menu action.
func (r *Runner) dispatch(choice prompt.Action) error {
	switch choice {
	case prompt.ActionAddLibraryTrack:
		return r.addLibraryTrack()
	case prompt.ActionViewLibrary:
		return r.viewLibrary()
	case prompt.ActionRecommend:
		return r.recommend()
	case prompt.ActionSaveLibraryReport:
		return r.saveLibraryReport()
	case prompt.ActionAddFileTrack:
		return r.addFileTrack()
	case prompt.ActionAddStreamTrack:
		return r.addStreamTrack()
	case prompt.ActionViewCrate:
		return r.showCrate()
	case prompt.ActionRemoveCrateTrack:
		return r.removeCrateTrack()
	case prompt.ActionSaveCrateReport:
		return r.saveCrateReport()
	case prompt.ActionBrowseCrate:
		return ui.Browse(r.crate)
	default:
		return fmt.Errorf("unknown menu choice: %d", choice)
	}
}

func (r *Runner) addLibraryTrack() error {
	if r.library.Len() >= r.library.Max() {
		return r.writePlainln("Library is full (%d tracks). Cannot add more.", r.library.Max())
	}

	track, err := prompt.LibraryTrackForm(r.config.Validation)
	if err != nil {
		return err
	}

	if err := r.library.Add(track); err != nil {
		if errors.Is(err, shared.ErrLibraryFull) {
			return r.writePlainln("Library is full (%d tracks). Cannot add more.", r.library.Max())
		}
		return err
	}

	r.logger.Info("library track added", "title", track.Title, "bpm", track.BPM)
	return r.writePlainln("Track added!")
}

func (r *Runner) viewLibrary() error {
	if err := r.showLibrary(); err != nil {
		return err
	}
	if r.library.Len() == 0 {
		return nil
	}

	genre, err := prompt.GenreForm()
	if err != nil {
		return err
	}
	return r.showGenreCount(genre)
}

// showLibrary writes the library table and its average tempo.
func (r *Runner) showLibrary() error {
	if r.library.Len() == 0 {
		return r.writePlain("No tracks saved yet.\n")
	}

	if err := r.writePlainln("==================== LIBRARY ===================="); err != nil {
		return err
	}
	formatter.WriteLibraryTable(r.output, r.library)
	return r.writePlain("\nAverage BPM: %.1f\n", r.library.AverageBPM())
}

// showGenreCount writes the exact-match count for the given genre.
func (r *Runner) showGenreCount(genre string) error {
	return r.writePlain("Tracks in genre %q: %d\n", genre, r.library.CountGenre(genre))
}

func (r *Runner) recommend() error {
	if r.library.Len() == 0 && r.crate.Size() == 0 {
		return r.writePlainln("No tracks stored. Add tracks first.")
	}

	bpm, energy, err := prompt.PositionForm(r.config.Validation)
	if err != nil {
		return err
	}

	return r.showRecommendations(bpm, energy)
}

// showRecommendations writes follow-up suggestions from both the library and
// the crate: tracks within the tempo window whose energy stays steady or rises.
func (r *Runner) showRecommendations(bpm int, energy models.Energy) error {
	if err := r.writePlainln("Suggested tracks (within +/-%d BPM and energy stays steady or rises):", models.TempoWindow); err != nil {
		return err
	}

	found := false
	for _, t := range r.library.Recommend(bpm, energy) {
		found = true
		if err := r.writePlain(" - %s by %s (%d BPM, %s)\n", t.Title, t.Artist, t.BPM, t.Energy); err != nil {
			return err
		}
	}
	for _, rec := range r.crate.Recommend(bpm, energy) {
		found = true
		if err := r.writePlain(" - %s\n", rec); err != nil {
			return err
		}
	}

	if !found {
		return r.writePlain("No close matches found. Try adding more tracks.\n")
	}
	return nil
}

func (r *Runner) saveLibraryReport() error {
	path := r.config.Report.LibraryPath
	if err := formatter.WriteLibraryReport(path, r.library); err != nil {
		r.logger.Errorf("failed to save library report: %v", err)
		return r.writePlainln("Could not open file: %s", path)
	}

	r.logger.Info("library report saved", "path", path)
	return r.writePlainln("Report saved to %s", path)
}

func (r *Runner) addFileTrack() error {
	rec, err := prompt.FileTrackForm(r.config.Validation)
	if err != nil {
		return err
	}

	r.crate.Add(rec)
	r.logger.Info("crate track added", "kind", rec.Kind(), "title", rec.Title())
	return r.writePlainln("File-backed track added.")
}

func (r *Runner) addStreamTrack() error {
	rec, err := prompt.StreamTrackForm(r.config.Validation)
	if err != nil {
		return err
	}

	r.crate.Add(rec)
	r.logger.Info("crate track added", "kind", rec.Kind(), "title", rec.Title())
	return r.writePlainln("Stream-backed track added.")
}

// showCrate writes the crate table.
func (r *Runner) showCrate() error {
	if err := r.writePlainln("==================== CRATE ===================="); err != nil {
		return err
	}
	r.crate.PrintAll(r.output)
	return nil
}

func (r *Runner) removeCrateTrack() error {
	if r.crate.Size() == 0 {
		return r.writePlainln("Nothing to remove.")
	}

	if err := r.showCrate(); err != nil {
		return err
	}
	index, err := prompt.IndexForm(r.crate.Size())
	if err != nil {
		return err
	}

	if r.crate.RemoveAt(index) {
		r.logger.Info("crate track removed", "index", index)
		return r.writePlainln("Removed item %d.", index)
	}
	return r.writePlainln("Remove failed.")
}

func (r *Runner) saveCrateReport() error {
	path := r.config.Report.CratePath
	if err := r.crate.SaveReport(path); err != nil {
		r.logger.Errorf("failed to save crate report: %v", err)
		return r.writePlainln("Could not open file: %s", path)
	}

	r.logger.Info("crate report saved", "path", path, "tracks", r.crate.Size())
	return r.writePlainln("Report saved to %s", path)
}

// Browse opens the crate browser directly from the command line.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	return ui.Browse(r.crate)
}

// ConfigInit writes the embedded example configuration to disk.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlainln("Wrote %s", path)
}
