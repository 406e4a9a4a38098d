package transport

import "k8s.io/utils/clock"

// Option configures a Transport at construction time.
type Option func(*Transport)

// WithTempo sets the starting tempo in BPM.
func WithTempo(bpm float64) Option {
	return func(t *Transport) {
		t.tempo = bpm
	}
}

// WithTimeSignature sets the number of quarter-note beats per bar.
func WithTimeSignature(beatsPerBar int) Option {
	return func(t *Transport) {
		t.beatsPerBar = beatsPerBar
	}
}

// WithPPQ sets the tick resolution in pulses per quarter note.
func WithPPQ(ppq int) Option {
	return func(t *Transport) {
		t.ppq = ppq
	}
}

// WithClock replaces the wall clock, re-anchoring the transport origin.
// Intended for tests that need a deterministic playhead.
func WithClock(c clock.Clock) Option {
	return func(t *Transport) {
		t.clock = c
		t.startTime = c.Now()
	}
}
