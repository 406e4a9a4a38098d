package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidiToFrequency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 440.0, MidiToFrequency(69))
	assert.InDelta(t, 880.0, MidiToFrequency(81), 1e-9)
	assert.InDelta(t, 261.626, MidiToFrequency(60), 0.001)
}

func TestFrequencyToMidi(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 69, FrequencyToMidi(440.0))
	assert.Equal(t, 57, FrequencyToMidi(220.0))

	// slightly detuned inputs snap to the nearest note
	assert.Equal(t, 69, FrequencyToMidi(442.0))
}

func TestPeriodToFrequency(t *testing.T) {
	t.Parallel()

	hz, err := PeriodToFrequency(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, hz)

	_, err = PeriodToFrequency(0)
	require.Error(t, err)

	_, err = PeriodToFrequency(-1)
	require.Error(t, err)
}
