package transport

import (
	"time"

	"github.com/fogleman/ease"
	"github.com/robmorgan/pulse/logger"
)

// Curve maps ramp progress in [0,1] onto an eased position in [0,1]. The
// functions in github.com/fogleman/ease all satisfy this shape.
type Curve func(t float64) float64

// tempoRamp glides the tempo between two values over a fixed window.
type tempoRamp struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

// at returns the ramped tempo at the given instant and whether the ramp has
// finished.
func (r *tempoRamp) at(instant time.Time) (float64, bool) {
	elapsed := instant.Sub(r.start)
	if elapsed >= r.duration {
		return r.to, true
	}
	progress := elapsed.Seconds() / r.duration.Seconds()
	return r.from + (r.to-r.from)*r.curve(progress), false
}

// RampTempo glides the tempo from its current value to bpm over d using an
// InOutQuad curve. A non-positive duration behaves like SetTempo.
func (t *Transport) RampTempo(bpm float64, d time.Duration) {
	t.RampTempoCurve(bpm, d, ease.InOutQuad)
}

// RampTempoCurve glides the tempo from its current value to bpm over d using
// the supplied easing curve.
func (t *Transport) RampTempoCurve(bpm float64, d time.Duration, curve Curve) {
	if d <= 0 {
		t.SetTempo(bpm)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.ramp = &tempoRamp{
		from:     t.currentTempo(),
		to:       bpm,
		start:    t.clock.Now(),
		duration: d,
		curve:    curve,
	}

	logger.GetProjectLogger().Debugf("ramping tempo to %.2f bpm over %v", bpm, d)
}
