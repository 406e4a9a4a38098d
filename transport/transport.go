package transport

import (
	"math"
	"sync"
	"time"

	"github.com/robmorgan/pulse/logger"
	"k8s.io/utils/clock"
)

const (
	// DefaultTempo is the tempo a new transport starts at, in BPM.
	DefaultTempo = 120.0

	// DefaultBeatsPerBar is the default time signature numerator.
	DefaultBeatsPerBar = 4

	// DefaultPPQ is the default tick resolution in pulses per quarter note.
	DefaultPPQ = 192
)

// Transport keeps the musical timeline: the playhead position, the tempo, the
// time signature and the tick resolution. It is the shared clock that time
// value conversions read from. All methods are safe for concurrent use.
type Transport struct {
	mu          sync.Mutex
	clock       clock.Clock
	startTime   time.Time
	tempo       float64
	beatsPerBar int
	ppq         int
	ramp        *tempoRamp
}

// New creates a transport at 120 BPM, 4/4 time and 192 PPQ, anchored to the
// wall clock at the moment of creation.
func New(opts ...Option) *Transport {
	c := clock.RealClock{}
	t := &Transport{
		clock:       c,
		startTime:   c.Now(),
		tempo:       DefaultTempo,
		beatsPerBar: DefaultBeatsPerBar,
		ppq:         DefaultPPQ,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Now returns the playhead position in seconds since the transport origin.
func (t *Transport) Now() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clock.Since(t.startTime).Seconds()
}

// Tempo returns the current tempo in BPM. While a tempo ramp is active the
// returned value glides along the ramp's curve.
func (t *Transport) Tempo() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentTempo()
}

// SetTempo sets a new tempo. The transport origin is adjusted so that the
// current beat and phase are unaffected by the tempo change. Any active ramp
// is cancelled.
func (t *Transport) SetTempo(bpm float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	instant := t.clock.Now()
	interval := beatInterval(t.currentTempo())
	elapsed := instant.Sub(t.startTime).Seconds()
	beat := math.Floor(elapsed / interval)
	phase := elapsed/interval - beat
	newInterval := beatInterval(bpm)
	t.startTime = instant.Add(-secondsToDuration(newInterval * (phase + beat)))
	t.tempo = bpm
	t.ramp = nil

	logger.GetProjectLogger().Debugf("tempo set to %.2f bpm", bpm)
}

// BeatInterval returns the length of one beat in seconds.
func (t *Transport) BeatInterval() float64 {
	return beatInterval(t.Tempo())
}

// BeatsPerBar returns the time signature numerator in quarter-note beats.
func (t *Transport) BeatsPerBar() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.beatsPerBar
}

// SetTimeSignature sets the number of quarter-note beats per bar.
func (t *Transport) SetTimeSignature(beatsPerBar int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.beatsPerBar = beatsPerBar
}

// PPQ returns the tick resolution in pulses per quarter note.
func (t *Transport) PPQ() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ppq
}

// SetPPQ sets the tick resolution in pulses per quarter note.
func (t *Transport) SetPPQ(ppq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ppq = ppq
}

// NextSubdivision returns the next grid boundary at or after the playhead, in
// seconds. The grid size is given in seconds. A non-positive grid returns the
// playhead position unchanged.
func (t *Transport) NextSubdivision(grid float64) float64 {
	now := t.Now()
	if grid <= 0 {
		return now
	}
	multiple := now / grid
	if math.Abs(multiple-math.Round(multiple)) < 1e-9 {
		return math.Round(multiple) * grid
	}
	return math.Ceil(multiple) * grid
}

// Snapshot captures the transport state at a single instant.
func (t *Transport) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Tempo:       t.currentTempo(),
		BeatsPerBar: t.beatsPerBar,
		PPQ:         t.ppq,
		Now:         t.clock.Since(t.startTime).Seconds(),
	}
}

// currentTempo resolves the tempo including any active ramp. Callers must
// hold the lock.
func (t *Transport) currentTempo() float64 {
	if t.ramp == nil {
		return t.tempo
	}
	bpm, done := t.ramp.at(t.clock.Now())
	if done {
		t.tempo = bpm
		t.ramp = nil
	}
	return bpm
}

// beatInterval returns the length in seconds of one beat at the given tempo.
func beatInterval(bpm float64) float64 {
	return 60.0 / bpm
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
