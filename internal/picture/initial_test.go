package picture

import (
	"errors"
	"testing"
)

func TestSelectInitial(t *testing.T) {
	withNarrowDensity2 := mixedPortrait()
	withNarrowDensity2[2] = ImageCandidate{URL: "https://placehold.it/300x400", Width: 300, Height: 400, DPPX: 2}

	tests := []struct {
		name       string
		candidates []ImageCandidate
		density    float64
		wantURL    string
	}{
		{"density 1 picks narrow portrait", mixedPortrait(), 1, "https://placehold.it/400x500"},
		{"density 2 seeds from density 2 only", mixedPortrait(), 2, "https://placehold.it/400x500@2"},
		{"narrower portrait at density 2", withNarrowDensity2, 2, "https://placehold.it/300x400"},
		{"single candidate", sixSizes()[:1], 2, "https://placehold.it/1792x1008"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := SelectInitial(MustCandidateSet(tt.candidates), tt.density)
			if err != nil {
				t.Fatalf("SelectInitial failed: %v", err)
			}
			if sel.Vector {
				t.Error("Vector: got true, want false")
			}
			if sel.Candidate.URL != tt.wantURL {
				t.Errorf("URL: got %s, want %s", sel.Candidate.URL, tt.wantURL)
			}
			if sel.Candidate.DPPX != tt.density {
				t.Errorf("DPPX: got %v, want %v", sel.Candidate.DPPX, tt.density)
			}
		})
	}
}

func TestSelectInitial_LandscapeNeverReplaces(t *testing.T) {
	// The 300x100 candidate is narrower but its ratio (3) is not portrait-like.
	set := MustCandidateSet([]ImageCandidate{
		{URL: "wide", Width: 800, Height: 600, DPPX: 1},
		{URL: "strip", Width: 300, Height: 100, DPPX: 1},
		{URL: "square", Width: 500, Height: 500, DPPX: 1},
	})

	sel, err := SelectInitial(set, 1)
	if err != nil {
		t.Fatalf("SelectInitial failed: %v", err)
	}
	if sel.Candidate.URL != "square" {
		t.Errorf("URL: got %s, want square", sel.Candidate.URL)
	}
}

func TestSelectInitial_Vector(t *testing.T) {
	set := MustCandidateSet([]ImageCandidate{
		{URL: "https://placehold.it/896x504", Width: 896, Height: 504, DPPX: 1},
		{URL: "some-file.svg", MIME: VectorMIME},
	})

	for _, density := range []float64{0.5, 1, 2, 7} {
		sel, err := SelectInitial(set, density)
		if err != nil {
			t.Fatalf("SelectInitial(%v) failed: %v", density, err)
		}
		if !sel.Vector {
			t.Errorf("density %v: Vector got false, want true", density)
		}
		if sel.Candidate.URL != "some-file.svg" {
			t.Errorf("density %v: URL got %s, want some-file.svg", density, sel.Candidate.URL)
		}
	}
}

func TestSelectInitial_NoDensityMatch(t *testing.T) {
	_, err := SelectInitial(MustCandidateSet(sixSizes()), 1.5)
	if !errors.Is(err, ErrNoDensityMatch) {
		t.Fatalf("error: got %v, want ErrNoDensityMatch", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type: got %T, want *ConfigurationError", err)
	}
	if cfgErr.Density != 1.5 {
		t.Errorf("Density: got %v, want 1.5", cfgErr.Density)
	}
}

func TestSelectInitial_EmptySet(t *testing.T) {
	_, err := SelectInitial(CandidateSet{}, 1)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("error: got %v, want ErrNoCandidates", err)
	}
}

func TestSelectInitial_Deterministic(t *testing.T) {
	set := MustCandidateSet(mixedPortrait())
	first, err := SelectInitial(set, 2)
	if err != nil {
		t.Fatalf("SelectInitial failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, _ := SelectInitial(set, 2)
		if again != first {
			t.Fatalf("run %d: got %+v, want %+v", i, again, first)
		}
	}

	found := false
	for _, c := range set.All() {
		if c == first.Candidate {
			found = true
		}
	}
	if !found {
		t.Errorf("selected candidate %+v is not in the set", first.Candidate)
	}
}
