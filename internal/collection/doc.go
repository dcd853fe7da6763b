// Package collection implements the owning storage for set planning.
//
// Two layers make up the package:
//   - [Vector] : A generic growable sequence with an explicit doubling/halving
//     capacity policy and panic-free indexed access.
//   - [Crate] : The track collection manager, composing a Vector of
//     [models.TrackRecord] handles with safe indexing, bulk table printing,
//     recommendations and report serialization.
//
// The crate is the sole owner of every record handle it stores. A handle
// returned by [Crate.Track] is a non-owning observation; removal releases the
// crate's reference and order among the remaining records is preserved.
package collection
