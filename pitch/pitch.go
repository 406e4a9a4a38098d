package pitch

import (
	"fmt"
	"math"
)

const (
	// A4Frequency is the tuning reference in Hz.
	A4Frequency = 440.0

	// A4Midi is the MIDI note number of the tuning reference.
	A4Midi = 69
)

// MidiToFrequency returns the frequency in Hz of a MIDI note number, assuming
// equal temperament tuned to A4.
func MidiToFrequency(midi int) float64 {
	return A4Frequency * math.Pow(2, float64(midi-A4Midi)/12)
}

// FrequencyToMidi returns the nearest MIDI note number for a frequency in Hz.
func FrequencyToMidi(hz float64) int {
	return int(math.Round(12*math.Log2(hz/A4Frequency))) + A4Midi
}

// PeriodToFrequency converts a period in seconds into a frequency in Hz. A
// non-positive period has no finite frequency.
func PeriodToFrequency(seconds float64) (float64, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("cannot convert period %vs to a frequency", seconds)
	}
	return 1 / seconds, nil
}
