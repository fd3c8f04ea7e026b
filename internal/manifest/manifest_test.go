package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/picture-mcp/internal/picture"
)

const sampleManifest = `
alt: Team photo
class_name: hero
item_prop: photo
device_pixel_ratio: 2
sources:
  - url: https://placehold.it/1792x1008
    width: 896
    height: 504
    dppx: 2
  - url: https://placehold.it/400x500
    width: 400
    height: 500
    dppx: 1
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Alt != "Team photo" {
		t.Errorf("Alt: got %q, want %q", m.Alt, "Team photo")
	}
	if len(m.ClassName) != 1 || m.ClassName[0] != "hero" {
		t.Errorf("ClassName: got %v, want [hero]", m.ClassName)
	}
	if m.DevicePixelRatio != 2 {
		t.Errorf("DevicePixelRatio: got %v, want 2", m.DevicePixelRatio)
	}

	cands := m.Candidates()
	if len(cands) != 2 {
		t.Fatalf("Candidates: got %d, want 2", len(cands))
	}
	want := picture.ImageCandidate{URL: "https://placehold.it/400x500", Width: 400, Height: 500, DPPX: 1}
	if cands[1] != want {
		t.Errorf("Candidates[1]: got %+v, want %+v", cands[1], want)
	}

	props := m.Props()
	if props.ItemProp != "photo" {
		t.Errorf("ItemProp: got %q, want photo", props.ItemProp)
	}
	if opts := m.Options(); opts.DevicePixelRatio != 2 || opts.Density != 0 {
		t.Errorf("Options: got %+v", opts)
	}
}

func TestParse_ClassNameForms(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"list", "class_name: [foo, fiz]\nsources: [{url: a}]", []string{"foo", "fiz"}},
		{"scalar", "class_name: foo\nsources: [{url: a}]", []string{"foo"}},
		{"null", "class_name: ~\nsources: [{url: a}]", nil},
		{"absent", "sources: [{url: a}]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(m.ClassName) != len(tt.want) {
				t.Fatalf("ClassName: got %v, want %v", m.ClassName, tt.want)
			}
			for i := range tt.want {
				if m.ClassName[i] != tt.want[i] {
					t.Errorf("ClassName[%d]: got %q, want %q", i, m.ClassName[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_JSON(t *testing.T) {
	doc := `{"alt":"foo","sources":[{"url":"some-file.svg","mime":"image/svg+xml"}]}`

	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !m.Candidates()[0].IsVector() {
		t.Error("expected vector candidate")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no sources", "alt: foo\n"},
		{"bad class_name", "class_name: {a: b}\nsources: [{url: a}]"},
		{"not yaml", "sources: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	doc := "sources:\n  - url: a\n    path: img/a.png\n  - url: b\n    path: /abs/b.png\n"
	path := filepath.Join(dir, "picture.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got, want := m.Sources[0].Path, filepath.Join(dir, "img", "a.png"); got != want {
		t.Errorf("Sources[0].Path: got %s, want %s", got, want)
	}
	if got := m.Sources[1].Path; got != "/abs/b.png" {
		t.Errorf("Sources[1].Path: got %s, want /abs/b.png", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestClassList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{`"foo"`, []string{"foo"}, false},
		{`["foo","fiz"]`, []string{"foo", "fiz"}, false},
		{`42`, nil, true},
	}

	for _, tt := range tests {
		var c ClassList
		err := c.UnmarshalJSON([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: error got %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(c) != len(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.in, c, tt.want)
		}
	}
}
