package timevalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNotationExactCandidates(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	s := snapshotFor(tr)

	// a value exactly on a candidate resolves to that candidate
	for _, symbol := range notationCandidates() {
		seconds, ok := notationSeconds(symbol, s)
		require.True(t, ok, "symbol=%q", symbol)

		tv, err := FromSeconds(tr, seconds)
		require.NoError(t, err)
		assert.Equal(t, symbol, tv.ToNotation(), "symbol=%q", symbol)
	}
}

func TestToNotationQuarterNote(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()

	tv, err := FromSeconds(tr, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "4n", tv.ToNotation())
}

func TestToNotationNearestFit(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()

	tests := []struct {
		seconds  float64
		expected string
	}{
		{0.74, "4n."},
		{0.51, "4n"},
		{0.17, "8t"},
		{1.95, "1m"},
		{0.001, "0"},
		{-0.1, "0"},
	}

	for _, test := range tests {
		tv, err := FromSeconds(tr, test.seconds)
		require.NoError(t, err)
		assert.Equal(t, test.expected, tv.ToNotation(), "seconds=%v", test.seconds)
	}
}

func TestToNotationTieKeepsFirstCandidate(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()

	// 1.75s sits exactly between "1m" (2s) and "2n." (1.5s); the earlier
	// candidate in the enumeration wins
	tv, err := FromSeconds(tr, 1.75)
	require.NoError(t, err)
	assert.Equal(t, "1m", tv.ToNotation())
}

func TestToNotationTracksTempo(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	tr.tempo = 60.0

	// at 60 BPM a quarter note lasts a full second
	tv, err := FromSeconds(tr, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "4n", tv.ToNotation())
}

func TestNotationCandidateOrder(t *testing.T) {
	t.Parallel()

	candidates := notationCandidates()

	require.Equal(t, "1m", candidates[0])
	require.Equal(t, []string{"2n.", "2n", "2t"}, candidates[1:4])
	require.Equal(t, "0", candidates[len(candidates)-1])

	// subdivisions run through the powers of two up to 256, triplets only
	// in plain form
	assert.Len(t, candidates, 2+8*3)
	assert.Contains(t, candidates, "256t")
	assert.NotContains(t, candidates, "2t.")
}

func TestNotationSecondsRejectsUnknownSymbols(t *testing.T) {
	t.Parallel()

	s := snapshotFor(nil)

	for _, symbol := range []string{"", "x", "4x", "nn", "4t.", "-2n"} {
		_, ok := notationSeconds(symbol, s)
		assert.False(t, ok, "symbol=%q", symbol)
	}
}
