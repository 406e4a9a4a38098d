// Package timevalue implements a musical-time value: an instant or duration
// on a musical timeline that converts between the representations musicians
// and audio engines use. A value can be read as raw seconds, sample-accurate
// ticks, bars:beats:sixteenths notation or the nearest rhythmic notation
// symbol, and can be quantized onto a rhythmic grid.
package timevalue

import (
	"fmt"
	"math"

	"github.com/robmorgan/pulse/pitch"
	"github.com/robmorgan/pulse/utils"
)

// Unit fixes the canonical representation of a TimeValue. It is chosen at
// construction and never changes over the value's lifetime.
type Unit int

const (
	// Seconds stores the quantity as wall-clock seconds.
	Seconds Unit = iota

	// Ticks stores the quantity as musical ticks (PPQ pulses).
	Ticks
)

// Transport supplies the timeline state that conversions read: the playhead
// position, the tempo, the time signature and the tick resolution. The
// TimeValue holds a non-owning reference and never mutates it. Concurrent
// conversions are safe only if the implementation allows concurrent reads.
type Transport interface {
	// Now returns the playhead position in seconds.
	Now() float64

	// NextSubdivision returns the next grid boundary at or after the
	// playhead, in seconds, for a grid size given in seconds.
	NextSubdivision(grid float64) float64

	// Tempo returns the current tempo in BPM.
	Tempo() float64

	// BeatsPerBar returns the time signature numerator in quarter-note
	// beats.
	BeatsPerBar() int

	// PPQ returns the tick resolution in pulses per quarter note.
	PPQ() int
}

// TimeValue holds a numeric quantity in a canonical unit, bound to an
// optional transport. Values are immutable; every conversion is a pure read.
type TimeValue struct {
	quantity  float64
	unit      Unit
	transport Transport
}

// New constructs a TimeValue from a plain quantity in the given canonical
// unit. NaN and infinite quantities are rejected here rather than surfacing
// later during conversion.
func New(tr Transport, quantity float64, unit Unit) (TimeValue, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return TimeValue{}, fmt.Errorf("time quantity must be finite, got %v", quantity)
	}
	return TimeValue{quantity: quantity, unit: unit, transport: tr}, nil
}

// FromSeconds constructs a seconds-canonical TimeValue.
func FromSeconds(tr Transport, seconds float64) (TimeValue, error) {
	return New(tr, seconds, Seconds)
}

// FromTicks constructs a ticks-canonical TimeValue.
func FromTicks(tr Transport, ticks float64) (TimeValue, error) {
	return New(tr, ticks, Ticks)
}

// Resolve coerces v into a TimeValue bound to tr. Accepted kinds: an
// existing TimeValue (kept as-is), a string time expression, or a plain
// number interpreted as seconds.
func Resolve(tr Transport, v any) (TimeValue, error) {
	switch val := v.(type) {
	case TimeValue:
		return val, nil
	case string:
		return Parse(tr, val)
	case float64:
		return New(tr, val, Seconds)
	case float32:
		return New(tr, float64(val), Seconds)
	case int:
		return New(tr, float64(val), Seconds)
	case int64:
		return New(tr, float64(val), Seconds)
	default:
		return TimeValue{}, fmt.Errorf("cannot resolve %T into a time value", v)
	}
}

// Quantity returns the raw quantity in the canonical unit.
func (t TimeValue) Quantity() float64 {
	return t.quantity
}

// Unit returns the canonical unit fixed at construction.
func (t TimeValue) Unit() Unit {
	return t.unit
}

// ToSeconds returns the value expressed in seconds.
func (t TimeValue) ToSeconds() float64 {
	if t.unit == Ticks {
		s := t.snapshot()
		return t.quantity / float64(s.ppq) * s.secondsPerQuarter()
	}
	return t.quantity
}

// ToTicks returns the value expressed in musical ticks, rounded to the
// nearest integral tick.
func (t TimeValue) ToTicks() int64 {
	if t.unit == Ticks {
		return int64(math.Round(t.quantity))
	}
	s := t.snapshot()
	quarters := t.ToSeconds() / s.secondsPerQuarter()
	return int64(math.Round(quarters * float64(s.ppq)))
}

// ToBarsBeatsSixteenths returns the value as a "measures:beats:sixteenths"
// triple relative to the transport's time signature. Negative values yield
// negative measure and beat indices.
func (t TimeValue) ToBarsBeatsSixteenths() string {
	s := t.snapshot()

	// round away floating-point noise before splitting the quarter count
	quarters := utils.RoundTo(t.ToSeconds()/s.secondsPerQuarter(), 4)

	measures := math.Floor(quarters / float64(s.beatsPerBar))
	beats := math.Mod(math.Floor(quarters), float64(s.beatsPerBar))
	sixteenths := math.Mod(quarters, 1) * 4

	return fmt.Sprintf("%d:%d:%s", int64(measures), int64(beats), formatSixteenths(sixteenths))
}

// ToMidi converts the value, read as the period of an oscillation, into the
// nearest MIDI note number. Non-positive values have no finite frequency and
// fail.
func (t TimeValue) ToMidi() (int, error) {
	hz, err := pitch.PeriodToFrequency(t.ToSeconds())
	if err != nil {
		return 0, err
	}
	return pitch.FrequencyToMidi(hz), nil
}

// Quantize snaps the value onto a rhythmic grid. The subdivision can be
// anything Resolve accepts; percent controls how far toward the ideal grid
// position the result moves (1 snaps fully, 0 leaves the value unchanged,
// values outside [0,1] extrapolate past the grid point). A subdivision that
// resolves to zero fails with an ArithmeticError.
func (t TimeValue) Quantize(subdivision any, percent float64) (TimeValue, error) {
	res, err := Resolve(t.transport, subdivision)
	if err != nil {
		return TimeValue{}, err
	}

	grid := res.inUnit(t.unit)
	if grid == 0 {
		return TimeValue{}, &ArithmeticError{Op: "quantize", Reason: "subdivision resolves to zero"}
	}

	multiple := math.Round(t.quantity / grid)
	ideal := multiple * grid
	quantity := t.quantity + (ideal-t.quantity)*percent

	return TimeValue{quantity: quantity, unit: t.unit, transport: t.transport}, nil
}

// inUnit returns the quantity expressed in the given unit, without rounding.
func (t TimeValue) inUnit(u Unit) float64 {
	if u == t.unit {
		return t.quantity
	}
	s := t.snapshot()
	if u == Ticks {
		return t.ToSeconds() / s.secondsPerQuarter() * float64(s.ppq)
	}
	return t.ToSeconds()
}

// formatSixteenths renders the sixteenths part with at most 3 fractional
// digits and no trailing zeroes.
func formatSixteenths(v float64) string {
	// math.Mod yields negative zero left of the origin, which FormatFloat
	// renders as "-0"
	if v == 0 {
		return "0"
	}
	str := formatFloat(v)
	if len(str) > 3 {
		str = formatFloat(utils.RoundTo(v, 3))
	}
	return str
}

// snapshot reads the bound transport once. Without a transport the defaults
// apply and the playhead sits at zero; this is the documented degraded mode,
// not an error.
func (t TimeValue) snapshot() snapshot {
	return snapshotFor(t.transport)
}
