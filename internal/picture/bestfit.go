package picture

import "math"

// Target is the display context a best fit is computed for.
type Target struct {
	Density float64
	Width   float64
	Height  float64
}

// BetterFit reports whether next should replace current as the best fit for t.
// The rules are applied in order and the first one that discriminates decides:
//
//  1. the candidate whose DPPX is strictly closer to t.Density wins;
//  2. a candidate at least t.Width wide beats one narrower than t.Width;
//  3. the smaller |Width - t.Width| wins;
//  4. the smaller |Height - t.Height| wins.
//
// When nothing discriminates, current is kept.
func BetterFit(current, next ImageCandidate, t Target) bool {
	curDensity := math.Abs(current.DPPX - t.Density)
	nextDensity := math.Abs(next.DPPX - t.Density)
	if nextDensity != curDensity {
		return nextDensity < curDensity
	}

	curCovers, nextCovers := current.Width >= t.Width, next.Width >= t.Width
	if curCovers != nextCovers {
		return nextCovers
	}

	curWidth := math.Abs(current.Width - t.Width)
	nextWidth := math.Abs(next.Width - t.Width)
	if nextWidth != curWidth {
		return nextWidth < curWidth
	}

	return math.Abs(next.Height-t.Height) < math.Abs(current.Height-t.Height)
}

// SelectBestFit folds every raster candidate of set through BetterFit, in
// supplied order, and returns the survivor. Vector candidates never take part.
// The set must contain at least one raster candidate.
func SelectBestFit(set CandidateSet, t Target) ImageCandidate {
	var best ImageCandidate
	seeded := false
	for _, c := range set.items {
		if c.IsVector() {
			continue
		}
		if !seeded || BetterFit(best, c, t) {
			best, seeded = c, true
		}
	}
	return best
}
