package timevalue

import (
	"strconv"

	"github.com/robmorgan/pulse/transport"
)

// Defaults used when a TimeValue has no transport attached.
const (
	DefaultTempo       = 120.0
	DefaultBeatsPerBar = 4
	DefaultPPQ         = 192
)

// snapshot is a single read of the transport state.
type snapshot struct {
	tempo       float64
	beatsPerBar int
	ppq         int
	now         float64
}

func (s snapshot) secondsPerQuarter() float64 {
	return 60.0 / s.tempo
}

func snapshotFor(tr Transport) snapshot {
	if tr == nil {
		return snapshot{tempo: DefaultTempo, beatsPerBar: DefaultBeatsPerBar, ppq: DefaultPPQ}
	}
	// a transport that can capture its state in one locked read is preferred
	// over four separate queries, which a tempo ramp could straddle
	if snapshotter, ok := tr.(interface{ Snapshot() transport.Snapshot }); ok {
		snap := snapshotter.Snapshot()
		return snapshot{
			tempo:       snap.Tempo,
			beatsPerBar: snap.BeatsPerBar,
			ppq:         snap.PPQ,
			now:         snap.Now,
		}
	}
	return snapshot{
		tempo:       tr.Tempo(),
		beatsPerBar: tr.BeatsPerBar(),
		ppq:         tr.PPQ(),
		now:         tr.Now(),
	}
}

// formatFloat renders v in its shortest decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
