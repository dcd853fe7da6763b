// package prompt implements the validated interactive inputs for the session
// menu, built on [huh] forms.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/crateworks/setarch/internal/library"
	"github.com/crateworks/setarch/internal/models"
	"github.com/crateworks/setarch/internal/shared"
)

// Action enumerates the session menu choices.
type Action int

const (
	ActionAddLibraryTrack Action = iota + 1
	ActionViewLibrary
	ActionRecommend
	ActionSaveLibraryReport
	ActionAddFileTrack
	ActionAddStreamTrack
	ActionViewCrate
	ActionRemoveCrateTrack
	ActionSaveCrateReport
	ActionBrowseCrate
	ActionQuit
)

// MenuChoice shows the session menu and returns the selected [Action].
func MenuChoice() (Action, error) {
	var choice Action
	err := huh.NewSelect[Action]().
		Title("What next?").
		Options(
			huh.NewOption("Add a track to the library", ActionAddLibraryTrack),
			huh.NewOption("View library summary", ActionViewLibrary),
			huh.NewOption("Recommend next tracks", ActionRecommend),
			huh.NewOption("Save library report", ActionSaveLibraryReport),
			huh.NewOption("Add a file-backed track to the crate", ActionAddFileTrack),
			huh.NewOption("Add a stream-backed track to the crate", ActionAddStreamTrack),
			huh.NewOption("View crate", ActionViewCrate),
			huh.NewOption("Remove crate track by index", ActionRemoveCrateTrack),
			huh.NewOption("Save crate report", ActionSaveCrateReport),
			huh.NewOption("Browse crate (interactive)", ActionBrowseCrate),
			huh.NewOption("Quit", ActionQuit),
		).
		Value(&choice).
		Run()
	if err != nil {
		return 0, fmt.Errorf("menu selection failed: %w", err)
	}
	return choice, nil
}

// NonEmpty validates that the trimmed input is not empty.
func NonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return shared.ErrEmptyInput
	}
	return nil
}

// BPMValidator returns a validator accepting integers within [min, max].
func BPMValidator(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number: %w", shared.ErrInvalidInput)
		}
		if n < min || n > max {
			return fmt.Errorf("enter %d to %d: %w", min, max, shared.ErrInvalidTempo)
		}
		return nil
	}
}

// IndexValidator returns a validator accepting integers within [0, size).
func IndexValidator(size int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number: %w", shared.ErrInvalidInput)
		}
		if n < 0 || n >= size {
			return fmt.Errorf("enter 0 to %d: %w", size-1, shared.ErrInvalidInput)
		}
		return nil
	}
}

// energyOptions builds the select options for the three energy levels.
func energyOptions() []huh.Option[models.Energy] {
	levels := models.Energies()
	options := make([]huh.Option[models.Energy], len(levels))
	for i, e := range levels {
		options[i] = huh.NewOption(e.String(), e)
	}
	return options
}

// bpmTitle formats the tempo prompt with the configured bounds.
func bpmTitle(v shared.ValidationConfig) string {
	return fmt.Sprintf("BPM (%d-%d)", v.BPMMin, v.BPMMax)
}

// LibraryTrackForm collects a legacy library track from the user.
func LibraryTrackForm(v shared.ValidationConfig) (library.Track, error) {
	var (
		track  library.Track
		bpmRaw string
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Validate(NonEmpty).Value(&track.Title),
		huh.NewInput().Title("Artist").Validate(NonEmpty).Value(&track.Artist),
		huh.NewInput().Title("Genre").Validate(NonEmpty).Value(&track.Genre),
		huh.NewInput().Title("Key (ex: Am, C, F#m)").Validate(NonEmpty).Value(&track.Key),
		huh.NewInput().Title(bpmTitle(v)).Validate(BPMValidator(v.BPMMin, v.BPMMax)).Value(&bpmRaw),
		huh.NewSelect[models.Energy]().Title("Energy level").Options(energyOptions()...).Value(&track.Energy),
		huh.NewInput().Title("Notes (mix notes)").Value(&track.Notes),
	))

	if err := form.Run(); err != nil {
		return library.Track{}, fmt.Errorf("track form failed: %w", err)
	}

	track.BPM, _ = strconv.Atoi(strings.TrimSpace(bpmRaw))
	return track, nil
}

// recordInput holds the fields shared by both crate record forms.
type recordInput struct {
	title  string
	bpmRaw string
	energy models.Energy
	source string
	notes  string
}

// recordForm collects the shared record fields plus one variant-specific
// source field with the given title.
func recordForm(v shared.ValidationConfig, sourceTitle string) (recordInput, error) {
	var in recordInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Validate(NonEmpty).Value(&in.title),
		huh.NewInput().Title(bpmTitle(v)).Validate(BPMValidator(v.BPMMin, v.BPMMax)).Value(&in.bpmRaw),
		huh.NewSelect[models.Energy]().Title("Energy level").Options(energyOptions()...).Value(&in.energy),
		huh.NewInput().Title(sourceTitle).Validate(NonEmpty).Value(&in.source),
		huh.NewInput().Title("Notes (mix notes)").Value(&in.notes),
	))

	if err := form.Run(); err != nil {
		return recordInput{}, fmt.Errorf("track form failed: %w", err)
	}
	return in, nil
}

// FileTrackForm collects a file-backed record from the user.
func FileTrackForm(v shared.ValidationConfig) (*models.FileTrack, error) {
	in, err := recordForm(v, "File path (ex: track.wav)")
	if err != nil {
		return nil, err
	}

	bpm, _ := strconv.Atoi(strings.TrimSpace(in.bpmRaw))
	return models.NewFileTrack(in.title, bpm, in.energy, in.source, models.NewMixNotes(in.notes)), nil
}

// StreamTrackForm collects a stream-backed record from the user.
func StreamTrackForm(v shared.ValidationConfig) (*models.StreamTrack, error) {
	in, err := recordForm(v, "Platform (ex: Spotify)")
	if err != nil {
		return nil, err
	}

	bpm, _ := strconv.Atoi(strings.TrimSpace(in.bpmRaw))
	return models.NewStreamTrack(in.title, bpm, in.energy, in.source, models.NewMixNotes(in.notes)), nil
}

// PositionForm asks for the current playing position (tempo and energy) used
// by the recommendation heuristics.
func PositionForm(v shared.ValidationConfig) (int, models.Energy, error) {
	var (
		bpmRaw string
		energy models.Energy
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(fmt.Sprintf("Current BPM you are playing (%d-%d)", v.BPMMin, v.BPMMax)).
			Validate(BPMValidator(v.BPMMin, v.BPMMax)).Value(&bpmRaw),
		huh.NewSelect[models.Energy]().Title("Current energy").Options(energyOptions()...).Value(&energy),
	))

	if err := form.Run(); err != nil {
		return 0, 0, fmt.Errorf("position form failed: %w", err)
	}

	bpm, _ := strconv.Atoi(strings.TrimSpace(bpmRaw))
	return bpm, energy, nil
}

// GenreForm asks for a genre to count matches against.
func GenreForm() (string, error) {
	var genre string
	err := huh.NewInput().
		Title("Enter a genre to count matches").
		Validate(NonEmpty).
		Value(&genre).
		Run()
	if err != nil {
		return "", fmt.Errorf("genre prompt failed: %w", err)
	}
	return genre, nil
}

// IndexForm asks for a record index within [0, size).
func IndexForm(size int) (int, error) {
	var raw string
	err := huh.NewInput().
		Title(fmt.Sprintf("Enter index to remove (0-%d)", size-1)).
		Validate(IndexValidator(size)).
		Value(&raw).
		Run()
	if err != nil {
		return 0, fmt.Errorf("index prompt failed: %w", err)
	}

	index, _ := strconv.Atoi(strings.TrimSpace(raw))
	return index, nil
}
