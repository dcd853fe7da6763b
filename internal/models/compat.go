package models

// TempoWindow is the BPM distance considered mixable when recommending a follow-up track.
const TempoWindow = 5

// WithinTempoWindow reports whether bpm is within [TempoWindow] of current.
func WithinTempoWindow(bpm, current int) bool {
	diff := bpm - current
	if diff < 0 {
		diff = -diff
	}
	return diff <= TempoWindow
}

// SustainsFlow reports whether a candidate at energy e keeps the set moving
// from the current level: the energy stays steady or rises exactly one step.
func (e Energy) SustainsFlow(current Energy) bool {
	return e == current || e == current+1
}
