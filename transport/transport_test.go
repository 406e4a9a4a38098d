package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

func TestNewTransportDefaults(t *testing.T) {
	t.Parallel()

	tr := New()

	assert.Equal(t, 120.0, tr.Tempo())
	assert.Equal(t, 4, tr.BeatsPerBar())
	assert.Equal(t, 192, tr.PPQ())

	// The beat interval should be every 500ms
	assert.Equal(t, 0.5, tr.BeatInterval())
}

func TestTransportOptions(t *testing.T) {
	t.Parallel()

	tr := New(WithTempo(128.0), WithTimeSignature(3), WithPPQ(480))

	assert.Equal(t, 128.0, tr.Tempo())
	assert.Equal(t, 3, tr.BeatsPerBar())
	assert.Equal(t, 480, tr.PPQ())
	assert.Equal(t, 0.46875, tr.BeatInterval())
}

func TestNow(t *testing.T) {
	t.Parallel()

	fc := clocktesting.NewFakeClock(time.Now())
	tr := New(WithClock(fc))

	assert.Equal(t, 0.0, tr.Now())

	fc.Step(750 * time.Millisecond)
	assert.InDelta(t, 0.75, tr.Now(), 1e-9)
}

func TestSetTempoPreservesPhase(t *testing.T) {
	t.Parallel()

	fc := clocktesting.NewFakeClock(time.Now())
	tr := New(WithClock(fc))

	// advance 2.5 beats at 120 BPM (1.25s), then change tempo
	fc.Step(1250 * time.Millisecond)
	tr.SetTempo(60.0)

	// still 2.5 beats in, now at 1s per beat
	elapsed := tr.Now() / tr.BeatInterval()
	assert.InDelta(t, 2.5, elapsed, 1e-6)
}

func TestNextSubdivision(t *testing.T) {
	t.Parallel()

	fc := clocktesting.NewFakeClock(time.Now())
	tr := New(WithClock(fc))

	fc.Step(300 * time.Millisecond)
	assert.InDelta(t, 0.5, tr.NextSubdivision(0.25), 1e-9)

	// an aligned playhead is its own boundary
	fc.Step(200 * time.Millisecond)
	assert.InDelta(t, 0.5, tr.NextSubdivision(0.25), 1e-9)

	// a non-positive grid returns the playhead unchanged
	assert.InDelta(t, 0.5, tr.NextSubdivision(0), 1e-9)
}

func TestRampTempo(t *testing.T) {
	t.Parallel()

	fc := clocktesting.NewFakeClock(time.Now())
	tr := New(WithClock(fc))

	tr.RampTempo(140.0, 10*time.Second)

	// InOutQuad is symmetric, so the midpoint sits halfway between the two
	// tempos
	fc.Step(5 * time.Second)
	assert.InDelta(t, 130.0, tr.Tempo(), 1e-9)

	fc.Step(5 * time.Second)
	assert.Equal(t, 140.0, tr.Tempo())

	// the ramp is finished and the target tempo sticks
	fc.Step(time.Second)
	assert.Equal(t, 140.0, tr.Tempo())
}

func TestRampTempoZeroDuration(t *testing.T) {
	t.Parallel()

	fc := clocktesting.NewFakeClock(time.Now())
	tr := New(WithClock(fc))

	tr.RampTempo(90.0, 0)
	assert.Equal(t, 90.0, tr.Tempo())
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	fc := clocktesting.NewFakeClock(time.Now())
	tr := New(WithClock(fc), WithTempo(100.0), WithTimeSignature(3), WithPPQ(96))

	fc.Step(1500 * time.Millisecond)
	snap := tr.Snapshot()

	require.Equal(t, 100.0, snap.Tempo)
	require.Equal(t, 3, snap.BeatsPerBar)
	require.Equal(t, 96, snap.PPQ)
	assert.InDelta(t, 1.5, snap.Now, 1e-9)
	assert.Equal(t, 0.6, snap.SecondsPerBeat())
	assert.InDelta(t, 1.8, snap.BarInterval(), 1e-9)
}
