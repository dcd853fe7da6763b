// Package models defines the track records at the heart of set planning.
//
// The package contains two categories of types:
//
// 1. The polymorphic record hierarchy stored in a crate:
//   - [TrackRecord] : Common interface over all record variants
//   - [FileTrack] : A track backed by a local audio file
//   - [StreamTrack] : A track sourced from a streaming platform
//   - [MixNotes] : Free-text annotation composed into each variant
//
// 2. Supporting value types:
//   - [Energy] : Ordered three-level set-building intensity (Low < Medium < High)
//
// Both record variants render themselves two ways: [TrackRecord.RenderRow]
// writes a fixed-width table fragment, and the [fmt.Stringer] implementation
// produces a single-line pipe-delimited summary. Callers holding a TrackRecord
// get the variant-specific output of whichever concrete type is behind the
// interface.
package models
