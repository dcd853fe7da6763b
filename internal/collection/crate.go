package collection

import (
	"fmt"
	"io"
	"os"

	"github.com/crateworks/setarch/internal/formatter"
	"github.com/crateworks/setarch/internal/models"
)

// Crate owns a growable collection of [models.TrackRecord] handles.
//
// The crate holds the only owning reference to each record it stores; handles
// returned by [Crate.Track] or [Crate.Tracks] are observations and removal is
// done exclusively through [Crate.RemoveAt]. A Crate must not be copied —
// copies would alias the same backing vector. Always pass *Crate.
type Crate struct {
	tracks *Vector[models.TrackRecord]
}

// NewCrate creates an empty crate with the given starting capacity.
func NewCrate(capacity int) *Crate {
	return &Crate{tracks: NewVector[models.TrackRecord](capacity)}
}

// Size returns the number of records in the crate.
func (c *Crate) Size() int { return c.tracks.Len() }

// Capacity returns the allocated slot count of the backing vector.
func (c *Crate) Capacity() int { return c.tracks.Cap() }

// Add appends a record and takes ownership of it. It returns the crate so
// calls can be chained.
func (c *Crate) Add(rec models.TrackRecord) *Crate {
	c.tracks.PushBack(rec)
	return c
}

// RemoveAt releases the record at index and closes the gap, preserving the
// order of the remaining records. It returns false with no effect when index
// is out of range.
func (c *Crate) RemoveAt(index int) bool {
	return c.tracks.RemoveAt(index)
}

// Without is the chainable counterpart of [Crate.RemoveAt]; an out-of-range
// index is a no-op.
func (c *Crate) Without(index int) *Crate {
	c.tracks.RemoveAt(index)
	return c
}

// Track returns the record at index, or nil when index is out of range.
// It never panics; callers must nil-check before use.
func (c *Crate) Track(index int) models.TrackRecord {
	return c.tracks.At(index)
}

// Tracks returns a non-owning snapshot of the stored records in order.
func (c *Crate) Tracks() []models.TrackRecord {
	out := make([]models.TrackRecord, 0, c.tracks.Len())
	for i := 0; i < c.tracks.Len(); i++ {
		out = append(out, c.tracks.At(i))
	}
	return out
}

// Clear releases every stored record.
func (c *Crate) Clear() {
	c.tracks.Clear()
}

// Recommend returns the stored records mixable from the given position: tempo
// within the tempo window and energy steady or rising one step.
func (c *Crate) Recommend(bpm int, energy models.Energy) []models.TrackRecord {
	var out []models.TrackRecord
	for i := 0; i < c.tracks.Len(); i++ {
		rec := c.tracks.At(i)
		if models.WithinTempoWindow(rec.Tempo(), bpm) && rec.Energy().SustainsFlow(energy) {
			out = append(out, rec)
		}
	}
	return out
}

// PrintAll writes the crate as a fixed-width table: a notice when empty,
// otherwise the header, one indexed row per record rendered polymorphically,
// and a trailing separator.
func (c *Crate) PrintAll(w io.Writer) {
	if c.tracks.Len() == 0 {
		fmt.Fprintln(w, "No tracks stored yet.")
		return
	}

	formatter.WriteCrateHeader(w)

	for i := 0; i < c.tracks.Len(); i++ {
		fmt.Fprintf(w, "%4d ", i)
		c.tracks.At(i).RenderRow(w)
		fmt.Fprintln(w)
	}

	formatter.WriteSeparator(w)
}

// SaveReport writes the crate report to path, overwriting any existing file.
// When the file cannot be opened the error is returned and nothing is written.
func (c *Crate) SaveReport(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, formatter.CrateReportTitle)
	fmt.Fprintf(f, "Tracks stored: %d\n\n", c.tracks.Len())
	c.PrintAll(f)

	return nil
}
