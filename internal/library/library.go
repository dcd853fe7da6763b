package library

import (
	"github.com/crateworks/setarch/internal/models"
	"github.com/crateworks/setarch/internal/shared"
)

// DefaultMaxTracks is the library capacity used when none is configured.
const DefaultMaxTracks = 7

// Track groups the flat metadata for one library entry.
type Track struct {
	Title  string
	Artist string
	Genre  string
	Key    string
	BPM    int
	Energy models.Energy
	Notes  string
}

// Library is a bounded, ordered list of [Track] values.
type Library struct {
	tracks []Track
	max    int
}

// New creates an empty library holding at most max tracks.
// Non-positive capacities fall back to [DefaultMaxTracks].
func New(max int) *Library {
	if max <= 0 {
		max = DefaultMaxTracks
	}
	return &Library{tracks: make([]Track, 0, max), max: max}
}

// Len returns the number of stored tracks.
func (l *Library) Len() int { return len(l.tracks) }

// Max returns the library capacity.
func (l *Library) Max() int { return l.max }

// Tracks returns a copy of the stored tracks in insertion order.
func (l *Library) Tracks() []Track {
	out := make([]Track, len(l.tracks))
	copy(out, l.tracks)
	return out
}

// Add appends a track, returning [shared.ErrLibraryFull] when at capacity.
func (l *Library) Add(t Track) error {
	if len(l.tracks) >= l.max {
		return shared.ErrLibraryFull
	}
	l.tracks = append(l.tracks, t)
	return nil
}

// AverageBPM returns the mean tempo across the library, or 0 when empty.
func (l *Library) AverageBPM() float64 {
	if len(l.tracks) == 0 {
		return 0
	}

	sum := 0
	for _, t := range l.tracks {
		sum += t.BPM
	}
	return float64(sum) / float64(len(l.tracks))
}

// CountGenre returns how many tracks match genre exactly.
func (l *Library) CountGenre(genre string) int {
	matches := 0
	for _, t := range l.tracks {
		if t.Genre == genre {
			matches++
		}
	}
	return matches
}

// Recommend returns the tracks mixable from the given position: tempo within
// the tempo window and energy steady or rising one step.
func (l *Library) Recommend(bpm int, energy models.Energy) []Track {
	var out []Track
	for _, t := range l.tracks {
		if models.WithinTempoWindow(t.BPM, bpm) && t.Energy.SustainsFlow(energy) {
			out = append(out, t)
		}
	}
	return out
}
