package timevalue

import (
	"regexp"
	"strconv"
	"strings"
)

// The expression grammar is a fixed ordered rule list: each rule pairs a
// pattern with a resolver producing seconds. More specific forms sit above
// the generic number rule so they win the match. The rule set is closed; new
// forms are added here, not injected at runtime.
type exprRule struct {
	pattern *regexp.Regexp
	resolve func(tr Transport, match []string) (float64, error)
}

var exprRules []exprRule

// The now-relative and quantize-to-grid resolvers recurse through Parse, so
// the rule table has to be filled in at init time rather than in a var
// initializer.
func init() {
	exprRules = []exprRule{
		// now-relative: "+<expr>" adds the playhead position to the inner
		// value
		{regexp.MustCompile(`^\+(.+)$`), resolveNowRelative},

		// quantize-to-grid: "@<expr>" snaps to the next boundary of the
		// inner value's grid
		{regexp.MustCompile(`^@(.+)$`), resolveNextSubdivision},

		// rhythmic notation: "4n", "8t", "4n.", "1m"
		{regexp.MustCompile(`^(\d+)(m|n\.?|t)$`), resolveNotation},

		// bars:beats:sixteenths: "1:2:0.5", sixteenths optional
		{regexp.MustCompile(`^(-?\d+):(\d+)(?::(\d+(?:\.\d+)?))?$`), resolveBarsBeatsSixteenths},

		// plain number with optional unit suffix: seconds by default, "ms"
		// milliseconds, "s" seconds, "i" ticks
		{regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(s|ms|i)?$`), resolveNumber},
	}
}

// Parse evaluates a textual time expression against the grammar and returns
// a seconds-canonical TimeValue bound to tr. An input no rule matches fails
// with a ParseError.
func Parse(tr Transport, expr string) (TimeValue, error) {
	trimmed := strings.TrimSpace(expr)
	for _, rule := range exprRules {
		match := rule.pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		seconds, err := rule.resolve(tr, match)
		if err != nil {
			return TimeValue{}, err
		}
		return New(tr, seconds, Seconds)
	}
	return TimeValue{}, &ParseError{Input: expr}
}

// nowSeconds is the playhead position in seconds, or zero when no transport
// is attached.
func nowSeconds(tr Transport) float64 {
	if tr == nil {
		return 0
	}
	return tr.Now()
}

func resolveNowRelative(tr Transport, match []string) (float64, error) {
	inner, err := Parse(tr, match[1])
	if err != nil {
		return 0, err
	}
	return inner.ToSeconds() + nowSeconds(tr), nil
}

func resolveNextSubdivision(tr Transport, match []string) (float64, error) {
	inner, err := Parse(tr, match[1])
	if err != nil {
		return 0, err
	}
	if tr == nil {
		// degraded mode: without a transport there is no grid to snap to
		return 0, nil
	}
	return tr.NextSubdivision(inner.ToSeconds()), nil
}

func resolveNotation(tr Transport, match []string) (float64, error) {
	seconds, ok := notationSeconds(match[0], snapshotFor(tr))
	if !ok {
		return 0, &ParseError{Input: match[0]}
	}
	return seconds, nil
}

func resolveBarsBeatsSixteenths(tr Transport, match []string) (float64, error) {
	s := snapshotFor(tr)

	measures, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Input: match[0]}
	}
	beats, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, &ParseError{Input: match[0]}
	}
	var sixteenths float64
	if match[3] != "" {
		sixteenths, err = strconv.ParseFloat(match[3], 64)
		if err != nil {
			return 0, &ParseError{Input: match[0]}
		}
	}

	spq := s.secondsPerQuarter()
	return measures*float64(s.beatsPerBar)*spq + beats*spq + sixteenths*spq/4, nil
}

func resolveNumber(tr Transport, match []string) (float64, error) {
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Input: match[0]}
	}

	switch match[2] {
	case "", "s":
		return value, nil
	case "ms":
		return value / 1000, nil
	case "i":
		s := snapshotFor(tr)
		return value / float64(s.ppq) * s.secondsPerQuarter(), nil
	default:
		return 0, &ParseError{Input: match[0]}
	}
}
