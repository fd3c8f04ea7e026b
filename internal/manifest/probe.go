package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/picture-mcp/internal/picture"
)

// DefaultWorkers is the probing concurrency used when none is configured.
const DefaultWorkers = 4

// Dimensions is the intrinsic size of a local image file.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Prober reads intrinsic dimensions of local image files and caches them by
// path.
//
// The cache is keyed by the exact path string. Different spellings of the
// same file (relative vs absolute) are cached separately.
//
// Prober is safe for concurrent use.
type Prober struct {
	mu      sync.RWMutex
	dims    map[string]Dimensions
	workers int
}

// NewProber creates a prober running at most workers decodes at once. A
// non-positive value selects DefaultWorkers.
func NewProber(workers int) *Prober {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Prober{
		dims:    make(map[string]Dimensions),
		workers: workers,
	}
}

// Dimensions returns the size of the image at path, decoding it on first use.
func (p *Prober) Dimensions(path string) (Dimensions, error) {
	p.mu.RLock()
	if d, ok := p.dims[path]; ok {
		p.mu.RUnlock()
		return d, nil
	}
	p.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to probe image: %w", err)
	}

	bounds := img.Bounds()
	d := Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}

	p.mu.Lock()
	p.dims[path] = d
	p.mu.Unlock()

	return d, nil
}

// Evict removes a cached entry so the next probe re-reads the file.
func (p *Prober) Evict(path string) {
	p.mu.Lock()
	delete(p.dims, path)
	p.mu.Unlock()
}

// Cached returns the number of cached entries.
func (p *Prober) Cached() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.dims)
}

// Probe completes every entry of m that names a local path:
//   - a .svg path without a MIME type is marked as a vector candidate;
//   - a raster path with a missing width or height gets the file's intrinsic
//     size. Declared values are never overwritten.
//
// The first probe failure cancels the remaining work and is returned.
func (p *Prober) Probe(ctx context.Context, m *Manifest) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := range m.Sources {
		i := i
		e := &m.Sources[i]
		if e.Path == "" {
			continue
		}
		if isVectorPath(e.Path) {
			if e.MIME == "" {
				e.MIME = picture.VectorMIME
			}
			continue
		}
		if e.Width > 0 && e.Height > 0 {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := p.Dimensions(e.Path)
			if err != nil {
				return fmt.Errorf("source %d (%s): %w", i, e.Path, err)
			}
			if e.Width <= 0 {
				e.Width = float64(d.Width)
			}
			if e.Height <= 0 {
				e.Height = float64(d.Height)
			}
			return nil
		})
	}

	return g.Wait()
}

func isVectorPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}
