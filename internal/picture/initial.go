package picture

import "math"

// portraitRatioCutoff is the width/height ratio below which a candidate counts
// as portrait-like for initial selection.
const portraitRatioCutoff = 2

// Selection is the result of initial selection.
type Selection struct {
	Candidate ImageCandidate
	Vector    bool
}

// SelectInitial chooses a provisional candidate before the rendered size is
// known.
//
// A vector candidate wins outright. Otherwise only candidates whose DPPX equals
// density take part: the first one seeds the reduction and a later one replaces
// the running best when it is strictly narrower and portrait-like
// (|width/height| < 2). ErrNoDensityMatch is returned, wrapped in a
// *ConfigurationError, when no candidate has that density.
func SelectInitial(set CandidateSet, density float64) (Selection, error) {
	if set.Len() == 0 {
		return Selection{}, &ConfigurationError{Index: -1, Err: ErrNoCandidates}
	}
	if v, ok := set.Vector(); ok {
		return Selection{Candidate: v, Vector: true}, nil
	}

	var best ImageCandidate
	seeded := false
	for _, c := range set.items {
		if c.DPPX != density {
			continue
		}
		if !seeded {
			best, seeded = c, true
			continue
		}
		if c.Width < best.Width && isPortrait(c) {
			best = c
		}
	}

	if !seeded {
		return Selection{}, &ConfigurationError{Index: -1, Density: density, Err: ErrNoDensityMatch}
	}
	return Selection{Candidate: best}, nil
}

func isPortrait(c ImageCandidate) bool {
	return math.Abs(c.Width/c.Height) < portraitRatioCutoff
}
