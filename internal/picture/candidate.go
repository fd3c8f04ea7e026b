package picture

import "math"

// VectorMIME marks a resolution-independent candidate.
const VectorMIME = "image/svg+xml"

// ImageCandidate describes one offered image resource.
//
// URL is opaque and never parsed. Width and Height are the intrinsic size of
// the asset and DPPX is the device-pixel density it targets. A vector
// candidate (MIME == VectorMIME) only needs a URL.
type ImageCandidate struct {
	URL    string  `json:"url"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	DPPX   float64 `json:"dppx,omitempty"`
	MIME   string  `json:"mime,omitempty"`
}

// IsVector reports whether the candidate is a vector (SVG) resource.
func (c ImageCandidate) IsVector() bool {
	return c.MIME == VectorMIME
}

// CandidateSet is the immutable, validated list of candidates a picture
// instance selects from. The zero value is empty and unusable; build one with
// NewCandidateSet.
type CandidateSet struct {
	items  []ImageCandidate
	vector int
}

// NewCandidateSet validates candidates and returns an immutable copy.
//
// When the list contains a vector candidate the last one wins and raster
// candidates are ignored, including for validation. Otherwise every
// candidate must carry a URL and positive Width, Height and DPPX; a zero
// height would make the aspect-ratio test divide by zero, so it is rejected
// here rather than during selection.
//
// All failures are returned as *ConfigurationError.
func NewCandidateSet(candidates []ImageCandidate) (CandidateSet, error) {
	if len(candidates) == 0 {
		return CandidateSet{}, &ConfigurationError{Index: -1, Err: ErrNoCandidates}
	}

	items := make([]ImageCandidate, len(candidates))
	copy(items, candidates)

	vector := -1
	for i, c := range items {
		if c.IsVector() {
			vector = i
		}
	}

	if vector >= 0 {
		if items[vector].URL == "" {
			return CandidateSet{}, invalid(vector, "url")
		}
		return CandidateSet{items: items, vector: vector}, nil
	}

	for i, c := range items {
		switch {
		case c.URL == "":
			return CandidateSet{}, invalid(i, "url")
		case !positive(c.Width):
			return CandidateSet{}, invalid(i, "width")
		case !positive(c.Height):
			return CandidateSet{}, invalid(i, "height")
		case !positive(c.DPPX):
			return CandidateSet{}, invalid(i, "dppx")
		}
	}

	return CandidateSet{items: items, vector: -1}, nil
}

// MustCandidateSet is like NewCandidateSet but panics on error. Intended for
// tests and static tables.
func MustCandidateSet(candidates []ImageCandidate) CandidateSet {
	set, err := NewCandidateSet(candidates)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of candidates, including ignored raster entries.
func (s CandidateSet) Len() int {
	return len(s.items)
}

// At returns the candidate at index i.
func (s CandidateSet) At(i int) ImageCandidate {
	return s.items[i]
}

// All returns a copy of the candidates in their supplied order.
func (s CandidateSet) All() []ImageCandidate {
	out := make([]ImageCandidate, len(s.items))
	copy(out, s.items)
	return out
}

// Vector returns the vector candidate that short-circuits selection, if any.
func (s CandidateSet) Vector() (ImageCandidate, bool) {
	if s.vector < 0 || len(s.items) == 0 {
		return ImageCandidate{}, false
	}
	return s.items[s.vector], true
}

// Densities returns the distinct raster densities in order of first
// appearance. It is empty for a vector set.
func (s CandidateSet) Densities() []float64 {
	if _, ok := s.Vector(); ok {
		return nil
	}
	var out []float64
	seen := make(map[float64]bool, len(s.items))
	for _, c := range s.items {
		if !seen[c.DPPX] {
			seen[c.DPPX] = true
			out = append(out, c.DPPX)
		}
	}
	return out
}

func invalid(i int, field string) *ConfigurationError {
	return &ConfigurationError{Index: i, Field: field, Err: ErrInvalidCandidate}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
