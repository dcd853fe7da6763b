// Package library implements the bounded struct-array track library and its
// derived statistics.
//
// This is the flat, non-polymorphic feature set: a fixed-capacity list of
// [Track] values with aggregate queries ([Library.AverageBPM],
// [Library.CountGenre]) and the follow-up recommendation heuristic
// ([Library.Recommend]). The polymorphic crate in package collection exists
// alongside it and the two do not share storage.
package library
