package picture

import "math"

// DefaultDevicePixelRatio is assumed when no platform density signal is given.
const DefaultDevicePixelRatio = 1.0

// ClosestDensity matches a platform pixel-density signal against the densities
// present in set and returns the nearest one. Ties favour the higher density.
// A vector set has no density classes; the platform value is returned as is.
func ClosestDensity(set CandidateSet, platform float64) float64 {
	densities := set.Densities()
	if len(densities) == 0 {
		return platform
	}

	best := densities[0]
	for _, d := range densities[1:] {
		delta, bestDelta := math.Abs(d-platform), math.Abs(best-platform)
		if delta < bestDelta || (delta == bestDelta && d > best) {
			best = d
		}
	}
	return best
}

// ResolveDensity returns the density a picture instance targets for raster
// selection. An explicit Options.Density is used verbatim, even when no
// candidate carries it; otherwise Options.DevicePixelRatio (or
// DefaultDevicePixelRatio) is matched with ClosestDensity.
func ResolveDensity(set CandidateSet, opts Options) float64 {
	if opts.Density > 0 {
		return opts.Density
	}
	platform := opts.DevicePixelRatio
	if !positive(platform) {
		platform = DefaultDevicePixelRatio
	}
	return ClosestDensity(set, platform)
}
