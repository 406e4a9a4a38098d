package timevalue

import (
	"strconv"
	"strings"

	"github.com/robmorgan/pulse/utils"
)

// notationSeconds resolves a rhythmic notation symbol into seconds under the
// given transport snapshot. Recognized forms: "<x>m" (measures), "<k>n"
// (1/k note), "<k>n." (dotted), "<k>t" (triplet) and "0". The bool reports
// whether the symbol was recognized.
func notationSeconds(symbol string, s snapshot) (float64, bool) {
	if symbol == "0" {
		return 0, true
	}
	if digits := strings.TrimSuffix(symbol, "m"); digits != symbol {
		measures, err := strconv.Atoi(digits)
		if err != nil || measures < 0 {
			return 0, false
		}
		return float64(measures) * float64(s.beatsPerBar) * s.secondsPerQuarter(), true
	}

	dotted := strings.HasSuffix(symbol, ".")
	if dotted {
		symbol = strings.TrimSuffix(symbol, ".")
	}

	var triplet bool
	var digits string
	switch {
	case strings.HasSuffix(symbol, "n"):
		digits = strings.TrimSuffix(symbol, "n")
	case strings.HasSuffix(symbol, "t"):
		triplet = true
		digits = strings.TrimSuffix(symbol, "t")
	default:
		return 0, false
	}

	k, err := strconv.Atoi(digits)
	if err != nil || k <= 0 {
		return 0, false
	}
	if triplet && dotted {
		return 0, false
	}

	// a 1/k note spans 4/k quarter notes
	seconds := 4.0 / float64(k) * s.secondsPerQuarter()
	if dotted {
		seconds *= 1.5
	}
	if triplet {
		seconds *= 2.0 / 3.0
	}
	return seconds, true
}

// notationCandidates enumerates every symbol the nearest-fit search
// considers, in the fixed order that decides ties: the whole measure first,
// then for each power-of-two subdivision its dotted, plain and triplet
// forms, and finally the zero-length notation.
func notationCandidates() []string {
	candidates := []string{"1m"}
	for pow := 1; pow <= 8; pow++ {
		base := strconv.Itoa(1 << pow)
		candidates = append(candidates, base+"n.", base+"n", base+"t")
	}
	return append(candidates, "0")
}

// ToNotation returns the rhythmic notation symbol closest to this value.
// Ties keep the candidate enumerated first, which makes the search
// deterministic.
func (t TimeValue) ToNotation() string {
	s := t.snapshot()
	seconds := t.ToSeconds()

	best := ""
	bestDiff := -1.0
	for _, candidate := range notationCandidates() {
		cs, ok := notationSeconds(candidate, s)
		if !ok {
			continue
		}
		diff := utils.Abs(cs - seconds)
		if bestDiff < 0 || diff < bestDiff {
			best = candidate
			bestDiff = diff
		}
	}
	return best
}
