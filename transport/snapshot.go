package transport

// Snapshot is an immutable view of the transport timeline at a single
// instant. Conversions that need a consistent read of tempo, time signature
// and playhead position should work from a snapshot rather than issuing
// separate queries.
type Snapshot struct {
	// Tempo is the tempo in BPM at the time of the snapshot.
	Tempo float64

	// BeatsPerBar is the time signature numerator in quarter-note beats.
	BeatsPerBar int

	// PPQ is the tick resolution in pulses per quarter note.
	PPQ int

	// Now is the playhead position in seconds since the transport origin.
	Now float64
}

// SecondsPerBeat returns the length of one quarter-note beat in seconds.
func (s Snapshot) SecondsPerBeat() float64 {
	return 60.0 / s.Tempo
}

// BarInterval returns the length of one bar in seconds.
func (s Snapshot) BarInterval() float64 {
	return s.SecondsPerBeat() * float64(s.BeatsPerBar)
}
