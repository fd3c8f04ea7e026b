package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/picture-mcp/internal/picture"
	"github.com/ironsheep/picture-mcp/internal/render"
)

// Entry is one candidate as written in a manifest.
type Entry struct {
	URL    string  `yaml:"url" json:"url"`
	Path   string  `yaml:"path,omitempty" json:"path,omitempty"`
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`
	DPPX   float64 `yaml:"dppx,omitempty" json:"dppx,omitempty"`
	MIME   string  `yaml:"mime,omitempty" json:"mime,omitempty"`
}

// Candidate converts the entry to a selection candidate.
func (e Entry) Candidate() picture.ImageCandidate {
	return picture.ImageCandidate{
		URL:    e.URL,
		Width:  e.Width,
		Height: e.Height,
		DPPX:   e.DPPX,
		MIME:   e.MIME,
	}
}

// ClassList is a list of class names that also decodes from a single string.
type ClassList []string

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (c *ClassList) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Tag == "!!null":
		*c = nil
		return nil
	case node.Kind == yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*c = ClassList{s}
		return nil
	case node.Kind == yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*c = list
		return nil
	default:
		return fmt.Errorf("class_name: expected string or list, got %s", node.Tag)
	}
}

// UnmarshalJSON accepts either a string or an array of strings.
func (c *ClassList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ClassList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("class_name: expected string or list: %w", err)
	}
	*c = list
	return nil
}

// Manifest describes one picture: its candidates, density hints and
// presentation pass-throughs.
type Manifest struct {
	Alt              string    `yaml:"alt" json:"alt"`
	ClassName        ClassList `yaml:"class_name,omitempty" json:"class_name,omitempty"`
	ClassNameImage   string    `yaml:"class_name_image,omitempty" json:"class_name_image,omitempty"`
	ClassNameObject  string    `yaml:"class_name_object,omitempty" json:"class_name_object,omitempty"`
	ItemProp         string    `yaml:"item_prop,omitempty" json:"item_prop,omitempty"`
	Density          float64   `yaml:"density,omitempty" json:"density,omitempty"`
	DevicePixelRatio float64   `yaml:"device_pixel_ratio,omitempty" json:"device_pixel_ratio,omitempty"`
	Sources          []Entry   `yaml:"sources" json:"sources"`

	// dir is the directory relative entry paths resolve against.
	dir string
}

// Parse decodes a manifest document. Relative entry paths are kept as
// written.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest has no sources")
	}
	return &m, nil
}

// Load reads and parses the manifest at path, resolving relative entry paths
// against its directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	for i := range m.Sources {
		m.Sources[i].Path = m.resolve(m.Sources[i].Path)
	}
	return m, nil
}

func (m *Manifest) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || m.dir == "" {
		return p
	}
	return filepath.Join(m.dir, p)
}

// Candidates returns the manifest's sources as selection candidates, in
// order.
func (m *Manifest) Candidates() []picture.ImageCandidate {
	out := make([]picture.ImageCandidate, len(m.Sources))
	for i, e := range m.Sources {
		out[i] = e.Candidate()
	}
	return out
}

// Props returns the presentation pass-throughs.
func (m *Manifest) Props() render.Props {
	return render.Props{
		Alt:             m.Alt,
		ClassName:       []string(m.ClassName),
		ClassNameImage:  m.ClassNameImage,
		ClassNameObject: m.ClassNameObject,
		ItemProp:        m.ItemProp,
	}
}

// Options returns the controller options implied by the manifest's density
// hints.
func (m *Manifest) Options() picture.Options {
	return picture.Options{
		Density:          m.Density,
		DevicePixelRatio: m.DevicePixelRatio,
	}
}
