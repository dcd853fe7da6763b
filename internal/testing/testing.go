// package testing contains shared testing utilities
package testing

import (
	"errors"
	"os"
	"testing"

	"github.com/crateworks/setarch/internal/library"
	"github.com/crateworks/setarch/internal/models"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MakeFileTrack builds a file-backed record with test defaults.
func MakeFileTrack(title string, bpm int, energy models.Energy, path, notes string) *models.FileTrack {
	return models.NewFileTrack(title, bpm, energy, path, models.NewMixNotes(notes))
}

// MakeStreamTrack builds a stream-backed record with test defaults.
func MakeStreamTrack(title string, bpm int, energy models.Energy, platform, notes string) *models.StreamTrack {
	return models.NewStreamTrack(title, bpm, energy, platform, models.NewMixNotes(notes))
}

// MakeLibraryTrack builds a legacy library track with placeholder metadata.
func MakeLibraryTrack(title, genre string, bpm int, energy models.Energy) library.Track {
	return library.Track{
		Title:  title,
		Artist: "Test",
		Genre:  genre,
		Key:    "Am",
		BPM:    bpm,
		Energy: energy,
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
