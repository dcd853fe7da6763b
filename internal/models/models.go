package models

import (
	"fmt"
	"io"
)

// Column widths for the fixed-width table rendering shared by rows, headers and reports.
const (
	TitleWidth  = 22
	TypeWidth   = 12
	TempoWidth  = 6
	EnergyWidth = 8
	SpacerWidth = 6
	NotesWidth  = 20
	LineWidth   = 78
)

// Kind discriminators returned by [TrackRecord.Kind].
const (
	KindFileBacked   = "FileBackedTrack"
	KindStreamBacked = "StreamBackedTrack"
)

// TrackRecord is the interface implemented by every record variant stored in a crate.
//
// A record is fully initialized at construction; setters mutate fields but no
// record is ever observable in a partially-built state.
type TrackRecord interface {
	Title() string
	SetTitle(title string)
	Tempo() int
	SetTempo(bpm int)
	Energy() Energy
	SetEnergy(e Energy)
	Notes() MixNotes
	SetNotes(n MixNotes)

	// Kind returns the fixed discriminator string for the concrete variant.
	Kind() string

	// RenderRow writes the record as a fixed-width table fragment: the shared
	// columns first, then the variant-specific notes and source columns.
	RenderRow(w io.Writer)

	// String returns a single-line pipe-delimited summary, so formatting code
	// printing through the interface gets variant-specific output.
	fmt.Stringer
}

var (
	_ TrackRecord = (*FileTrack)(nil)
	_ TrackRecord = (*StreamTrack)(nil)
)

// MixNotes wraps the free-text annotation composed into each record variant.
type MixNotes struct {
	text string
}

// NewMixNotes creates a [MixNotes] value holding the given text.
func NewMixNotes(text string) MixNotes {
	return MixNotes{text: text}
}

// Text returns the raw annotation text.
func (n MixNotes) Text() string { return n.text }

// HasContent reports whether any annotation text was set.
func (n MixNotes) HasContent() bool { return n.text != "" }

// trackCore holds the field set shared by every record variant.
type trackCore struct {
	title  string
	tempo  int
	energy Energy
}

func (t *trackCore) Title() string         { return t.title }
func (t *trackCore) SetTitle(title string) { t.title = title }
func (t *trackCore) Tempo() int            { return t.tempo }
func (t *trackCore) SetTempo(bpm int)      { t.tempo = bpm }
func (t *trackCore) Energy() Energy        { return t.energy }
func (t *trackCore) SetEnergy(e Energy)    { t.energy = e }

// renderShared writes the columns common to all variants: truncated title,
// kind, right-aligned tempo and the energy label.
func (t *trackCore) renderShared(w io.Writer, kind string) {
	fmt.Fprintf(w, "%-*.*s%-*s%*d  %-*s",
		TitleWidth, TitleWidth-1, t.title,
		TypeWidth, kind,
		TempoWidth, t.tempo,
		EnergyWidth, t.energy,
	)
}

// renderNotes writes the spacer and notes columns, substituting "(none)" for empty notes.
func renderNotes(w io.Writer, n MixNotes) {
	text := "(none)"
	if n.HasContent() {
		text = n.Text()
	}
	fmt.Fprintf(w, "%*s%-*.*s", SpacerWidth, "", NotesWidth, NotesWidth-1, text)
}

// FileTrack is a track backed by an audio file on disk.
type FileTrack struct {
	trackCore
	path  string
	notes MixNotes
}

// NewFileTrack creates a fully-initialized file-backed track record.
func NewFileTrack(title string, bpm int, energy Energy, path string, notes MixNotes) *FileTrack {
	return &FileTrack{
		trackCore: trackCore{title: title, tempo: bpm, energy: energy},
		path:      path,
		notes:     notes,
	}
}

// Path returns the backing file path.
func (t *FileTrack) Path() string { return t.path }

// SetPath replaces the backing file path.
func (t *FileTrack) SetPath(path string) { t.path = path }

func (t *FileTrack) Notes() MixNotes     { return t.notes }
func (t *FileTrack) SetNotes(n MixNotes) { t.notes = n }

// Kind returns [KindFileBacked].
func (t *FileTrack) Kind() string { return KindFileBacked }

// Equal reports whether two file-backed tracks identify the same track.
// Identity is (title, path) only; tempo, energy and notes do not participate.
func (t *FileTrack) Equal(other *FileTrack) bool {
	if other == nil {
		return false
	}
	return t.title == other.title && t.path == other.path
}

// RenderRow writes the shared columns followed by notes and the file path.
func (t *FileTrack) RenderRow(w io.Writer) {
	t.renderShared(w, t.Kind())
	renderNotes(w, t.notes)
	fmt.Fprintf(w, "  Path: %s", t.path)
}

// String returns the pipe-delimited summary line for the record.
func (t *FileTrack) String() string {
	return fmt.Sprintf("%s | %s | %d BPM | %s | Path=%s", t.Kind(), t.title, t.tempo, t.energy, t.path)
}

// StreamTrack is a track sourced from a streaming platform.
type StreamTrack struct {
	trackCore
	platform string
	notes    MixNotes
}

// NewStreamTrack creates a fully-initialized stream-backed track record.
func NewStreamTrack(title string, bpm int, energy Energy, platform string, notes MixNotes) *StreamTrack {
	return &StreamTrack{
		trackCore: trackCore{title: title, tempo: bpm, energy: energy},
		platform:  platform,
		notes:     notes,
	}
}

// Platform returns the streaming platform label.
func (t *StreamTrack) Platform() string { return t.platform }

// SetPlatform replaces the streaming platform label.
func (t *StreamTrack) SetPlatform(platform string) { t.platform = platform }

func (t *StreamTrack) Notes() MixNotes     { return t.notes }
func (t *StreamTrack) SetNotes(n MixNotes) { t.notes = n }

// Kind returns [KindStreamBacked].
func (t *StreamTrack) Kind() string { return KindStreamBacked }

// RenderRow writes the shared columns followed by notes and the platform.
func (t *StreamTrack) RenderRow(w io.Writer) {
	t.renderShared(w, t.Kind())
	renderNotes(w, t.notes)
	fmt.Fprintf(w, "  Platform: %s", t.platform)
}

// String returns the pipe-delimited summary line for the record.
func (t *StreamTrack) String() string {
	return fmt.Sprintf("%s | %s | %d BPM | %s | Platform=%s", t.Kind(), t.title, t.tempo, t.energy, t.platform)
}
