package picture

import "testing"

func TestSelectBestFit(t *testing.T) {
	set := MustCandidateSet(sixSizes())

	tests := []struct {
		name    string
		target  Target
		wantURL string
	}{
		{"closest to 2000x2000", Target{1, 2000, 2000}, "https://placehold.it/896x504"},
		{"closest to 890x500", Target{1, 890, 500}, "https://placehold.it/896x504"},
		{"closest to 760x450", Target{1, 760, 450}, "https://placehold.it/768x432"},
		// 768 undershoots 770, so the covering 896 wins despite being farther.
		{"straddle at 770x450", Target{1, 770, 450}, "https://placehold.it/896x504"},
		{"smaller than everything", Target{1, 100, 100}, "https://placehold.it/640x470"},
		{"closest to 2000x2000-dppx2", Target{2, 2000, 2000}, "https://placehold.it/1792x1008"},
		{"closest to 2000x2000-dppx3", Target{3, 2000, 2000}, "https://placehold.it/1792x1008"},
		{"closest to 2000x2000-dppx0.5", Target{0.5, 2000, 2000}, "https://placehold.it/896x504"},
		{"dppx2 at 700x400", Target{2, 700, 400}, "https://placehold.it/1536x864"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectBestFit(set, tt.target)
			if got.URL != tt.wantURL {
				t.Errorf("URL: got %s, want %s", got.URL, tt.wantURL)
			}
		})
	}
}

func TestBetterFit_Rules(t *testing.T) {
	target := Target{Density: 1, Width: 500, Height: 400}

	tests := []struct {
		name    string
		current ImageCandidate
		next    ImageCandidate
		want    bool
	}{
		{
			"closer density wins over size",
			ImageCandidate{Width: 500, Height: 400, DPPX: 2},
			ImageCandidate{Width: 100, Height: 100, DPPX: 1},
			true,
		},
		{
			"farther density never wins",
			ImageCandidate{Width: 100, Height: 100, DPPX: 1},
			ImageCandidate{Width: 500, Height: 400, DPPX: 2},
			false,
		},
		{
			"covering beats closer undershoot",
			ImageCandidate{Width: 499, Height: 400, DPPX: 1},
			ImageCandidate{Width: 900, Height: 400, DPPX: 1},
			true,
		},
		{
			"undershoot never replaces covering",
			ImageCandidate{Width: 900, Height: 400, DPPX: 1},
			ImageCandidate{Width: 499, Height: 400, DPPX: 1},
			false,
		},
		{
			"smaller width distance among covering",
			ImageCandidate{Width: 900, Height: 400, DPPX: 1},
			ImageCandidate{Width: 600, Height: 400, DPPX: 1},
			true,
		},
		{
			"smaller width distance among undershooting",
			ImageCandidate{Width: 200, Height: 400, DPPX: 1},
			ImageCandidate{Width: 300, Height: 400, DPPX: 1},
			true,
		},
		{
			"height breaks width tie",
			ImageCandidate{Width: 600, Height: 100, DPPX: 1},
			ImageCandidate{Width: 600, Height: 390, DPPX: 1},
			true,
		},
		{
			"full tie keeps current",
			ImageCandidate{URL: "a", Width: 600, Height: 390, DPPX: 1},
			ImageCandidate{URL: "b", Width: 600, Height: 410, DPPX: 1},
			false,
		},
		{
			"equal density distance on both sides",
			ImageCandidate{Width: 900, Height: 400, DPPX: 0.5},
			ImageCandidate{Width: 600, Height: 400, DPPX: 1.5},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BetterFit(tt.current, tt.next, target); got != tt.want {
				t.Errorf("BetterFit: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectBestFit_DensityDominance(t *testing.T) {
	// Whatever the order, the only density-1 candidate wins at density 1.
	exact := ImageCandidate{URL: "exact", Width: 10, Height: 10, DPPX: 1}
	others := []ImageCandidate{
		{URL: "perfect-size", Width: 800, Height: 600, DPPX: 2},
		{URL: "big", Width: 4000, Height: 3000, DPPX: 3},
	}

	orders := [][]ImageCandidate{
		{exact, others[0], others[1]},
		{others[0], exact, others[1]},
		{others[0], others[1], exact},
	}

	for i, order := range orders {
		got := SelectBestFit(MustCandidateSet(order), Target{1, 800, 600})
		if got != exact {
			t.Errorf("order %d: got %s, want exact", i, got.URL)
		}
	}
}

func TestSelectBestFit_Idempotent(t *testing.T) {
	set := MustCandidateSet(sixSizes())
	target := Target{Density: 1, Width: 700, Height: 400}

	first := SelectBestFit(set, target)
	second := SelectBestFit(set, target)
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}
