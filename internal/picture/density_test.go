package picture

import "testing"

func TestClosestDensity(t *testing.T) {
	set := MustCandidateSet([]ImageCandidate{
		{URL: "a", Width: 10, Height: 10, DPPX: 1},
		{URL: "b", Width: 10, Height: 10, DPPX: 2},
		{URL: "c", Width: 10, Height: 10, DPPX: 3},
	})

	tests := []struct {
		platform float64
		want     float64
	}{
		{1, 1},
		{1.2, 1},
		{1.5, 2}, // tie goes to the higher density
		{2.75, 3},
		{0.5, 1},
		{4, 3},
	}

	for _, tt := range tests {
		if got := ClosestDensity(set, tt.platform); got != tt.want {
			t.Errorf("ClosestDensity(%v): got %v, want %v", tt.platform, got, tt.want)
		}
	}
}

func TestResolveDensity(t *testing.T) {
	set := MustCandidateSet(sixSizes())

	tests := []struct {
		name string
		opts Options
		want float64
	}{
		{"default platform", Options{}, 1},
		{"platform signal", Options{DevicePixelRatio: 2.2}, 2},
		{"explicit density wins", Options{Density: 1, DevicePixelRatio: 3}, 1},
		{"explicit density kept verbatim", Options{Density: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDensity(set, tt.opts); got != tt.want {
				t.Errorf("ResolveDensity: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosestDensity_Vector(t *testing.T) {
	set := MustCandidateSet([]ImageCandidate{{URL: "x.svg", MIME: VectorMIME}})
	if got := ClosestDensity(set, 1.5); got != 1.5 {
		t.Errorf("ClosestDensity: got %v, want 1.5", got)
	}
}
