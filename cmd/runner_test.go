package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crateworks/setarch/internal/library"
	"github.com/crateworks/setarch/internal/models"
	"github.com/crateworks/setarch/internal/shared"
	tu "github.com/crateworks/setarch/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.library == nil || runner.library.Max() != config.Library.MaxTracks {
				t.Error("expected library sized from config")
			}
			if runner.crate == nil || runner.crate.Capacity() != config.Crate.InitialCapacity {
				t.Error("expected crate sized from config")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.library.Max() != library.DefaultMaxTracks {
				t.Errorf("library max = %d, want %d", runner.library.Max(), library.DefaultMaxTracks)
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("showLibrary", func(t *testing.T) {
		t.Run("empty library", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			runner.showLibrary()
			if !strings.Contains(output.String(), "No tracks saved yet.") {
				t.Errorf("missing empty notice, got: %s", output.String())
			}
		})

		t.Run("renders table and average", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})
			if err := runner.library.Add(tu.MakeLibraryTrack("A", "House", 120, models.EnergyMedium)); err != nil {
				t.Fatalf("Add failed: %v", err)
			}

			runner.showLibrary()
			out := output.String()
			for _, want := range []string{"LIBRARY", "House", "Average BPM: 120.0"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	})

	t.Run("showGenreCount", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		if err := runner.library.Add(tu.MakeLibraryTrack("A", "House", 120, models.EnergyMedium)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		runner.showGenreCount("House")
		if !strings.Contains(output.String(), `Tracks in genre "House": 1`) {
			t.Errorf("unexpected output: %s", output.String())
		}
	})

	t.Run("showRecommendations", func(t *testing.T) {
		t.Run("from library and crate", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})
			if err := runner.library.Add(tu.MakeLibraryTrack("Steady", "House", 122, models.EnergyMedium)); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			runner.crate.Add(tu.MakeStreamTrack("Rising", 124, models.EnergyHigh, "Spotify", ""))

			runner.showRecommendations(120, models.EnergyMedium)
			out := output.String()
			for _, want := range []string{"Steady", "Rising", "Platform=Spotify"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})

		t.Run("no matches", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})
			if err := runner.library.Add(tu.MakeLibraryTrack("Far", "House", 180, models.EnergyLow)); err != nil {
				t.Fatalf("Add failed: %v", err)
			}

			runner.showRecommendations(120, models.EnergyMedium)
			if !strings.Contains(output.String(), "No close matches found.") {
				t.Errorf("unexpected output: %s", output.String())
			}
		})
	})

	t.Run("showCrate", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		runner.crate.Add(tu.MakeFileTrack("A", 120, models.EnergyMedium, "a.wav", ""))

		runner.showCrate()
		out := output.String()
		for _, want := range []string{"CRATE", models.KindFileBacked, "Path: a.wav"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("saveCrateReport", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		runner.config.Report.CratePath = filepath.Join(t.TempDir(), "crate.txt")
		runner.crate.Add(tu.MakeFileTrack("A", 120, models.EnergyMedium, "a.wav", ""))

		if err := runner.saveCrateReport(); err != nil {
			t.Fatalf("saveCrateReport failed: %v", err)
		}

		tu.AssertFileExists(t, runner.config.Report.CratePath)
		content := tu.MustReadFile(t, runner.config.Report.CratePath)
		if !strings.Contains(content, "Tracks stored: 1") {
			t.Errorf("report missing count:\n%s", content)
		}
		if !strings.Contains(output.String(), "Report saved to") {
			t.Errorf("missing confirmation, got: %s", output.String())
		}
	})

	t.Run("saveLibraryReport failure is reported not fatal", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		runner.config.Report.LibraryPath = filepath.Join(t.TempDir(), "missing", "lib.txt")

		if err := runner.saveLibraryReport(); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.Contains(output.String(), "Could not open file:") {
			t.Errorf("missing failure notice, got: %s", output.String())
		}
	})

	t.Run("write failures propagate", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runner.showLibrary(); err == nil {
			t.Error("expected write error from showLibrary")
		}
		if err := runner.showCrate(); err == nil {
			t.Error("expected write error from showCrate")
		}
		if err := runner.showGenreCount("House"); err == nil {
			t.Error("expected write error from showGenreCount")
		}
		if err := runner.showRecommendations(120, models.EnergyMedium); err == nil {
			t.Error("expected write error from showRecommendations")
		}
	})

	t.Run("reloadConfig", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		content := "[library]\nmax_tracks = 3\n\n[crate]\ninitial_capacity = 4\n\n[validation]\nbpm_min = 70\nbpm_max = 180\n\n[report]\nlibrary_path = \"lib.txt\"\ncrate_path = \"crate.txt\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		runner.reloadConfig(path)

		if runner.config.Validation.BPMMin != 70 {
			t.Errorf("BPMMin = %d, want 70", runner.config.Validation.BPMMin)
		}
		if runner.library.Max() != 3 {
			t.Errorf("library max = %d, want 3", runner.library.Max())
		}
		if runner.crate.Capacity() != 4 {
			t.Errorf("crate capacity = %d, want 4", runner.crate.Capacity())
		}
	})
}
