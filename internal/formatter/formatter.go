// package formatter renders fixed-width ASCII tables and plain-text reports
// for the crate and the legacy library
package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crateworks/setarch/internal/library"
	"github.com/crateworks/setarch/internal/models"
)

// Report title lines. Reports are overwritten on each save.
const (
	CrateReportTitle   = "==================== DJ SET ARCHITECT REPORT ===================="
	LibraryReportTitle = "==================== DJ SET ARCHITECT REPORT (LIBRARY) ===================="
)

// Column widths specific to the legacy library table. The shared widths live
// in package models next to the row rendering.
const (
	ArtistWidth = 18
	GenreWidth  = 12
	KeyWidth    = 6
)

// WriteSeparator writes the fixed-width dashed rule that frames tables.
func WriteSeparator(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", models.LineWidth))
}

// WriteCrateHeader writes the column header for the polymorphic crate table.
func WriteCrateHeader(w io.Writer) {
	fmt.Fprintf(w, "Idx %-*s%-*s%*s  %-*s%-*s  Source\n",
		models.TitleWidth, "Title",
		models.TypeWidth, "Type",
		models.TempoWidth, "BPM",
		models.EnergyWidth, "Energy",
		models.NotesWidth, "Notes",
	)
	WriteSeparator(w)
}

// WriteLibraryHeader writes the column header for the legacy library table.
func WriteLibraryHeader(w io.Writer) {
	fmt.Fprintf(w, "%-*s%-*s%-*s%-*s%*s  %-*s%-*s\n",
		models.TitleWidth, "Title",
		ArtistWidth, "Artist",
		GenreWidth, "Genre",
		KeyWidth, "Key",
		models.TempoWidth, "BPM",
		models.EnergyWidth, "Energy",
		models.NotesWidth, "Notes",
	)
	WriteSeparator(w)
}

// WriteLibraryRow writes one legacy track as a fixed-width table row.
func WriteLibraryRow(w io.Writer, t library.Track) {
	fmt.Fprintf(w, "%-*.*s%-*.*s%-*.*s%-*.*s%*d  %-*s%-*.*s\n",
		models.TitleWidth, models.TitleWidth-1, t.Title,
		ArtistWidth, ArtistWidth-1, t.Artist,
		GenreWidth, GenreWidth-1, t.Genre,
		KeyWidth, KeyWidth-1, t.Key,
		models.TempoWidth, t.BPM,
		models.EnergyWidth, t.Energy,
		models.NotesWidth, models.NotesWidth-1, t.Notes,
	)
}

// WriteLibraryTable writes the legacy library as a table, or a notice when empty.
func WriteLibraryTable(w io.Writer, lib *library.Library) {
	if lib.Len() == 0 {
		fmt.Fprintln(w, "No tracks saved yet.")
		return
	}

	WriteLibraryHeader(w)
	for _, t := range lib.Tracks() {
		WriteLibraryRow(w, t)
	}
}

// WriteLibraryReport writes the legacy library report to path, overwriting any
// existing file. The report carries the track count and the average BPM.
func WriteLibraryReport(path string, lib *library.Library) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, LibraryReportTitle)
	fmt.Fprintf(f, "Tracks stored: %d\n\n", lib.Len())

	if lib.Len() == 0 {
		fmt.Fprintln(f, "No tracks saved.")
		return nil
	}

	WriteLibraryTable(f, lib)
	fmt.Fprintf(f, "\nAverage BPM: %.1f\n", lib.AverageBPM())

	return nil
}
