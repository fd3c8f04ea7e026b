package picture

import (
	"fmt"
	"sync"
)

// Phase is the lifecycle position of a Controller.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseProvisional
	PhaseFitted
	PhaseDetached
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseProvisional:
		return "provisional"
	case PhaseFitted:
		return "fitted"
	case PhaseDetached:
		return "detached"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name produced by MarshalText.
func (p *Phase) UnmarshalText(text []byte) error {
	for q := PhaseUninitialized; q <= PhaseDetached; q++ {
		if q.String() == string(text) {
			*p = q
			return nil
		}
	}
	return fmt.Errorf("unknown picture phase %q", text)
}

// Size is a rendered width and height in CSS pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measurer reports the current rendered size of the host surface. ok is false
// while the surface cannot be measured (e.g. not yet laid out).
type Measurer interface {
	Measure() (size Size, ok bool)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func() (Size, bool)

// Measure calls f.
func (f MeasurerFunc) Measure() (Size, bool) {
	return f()
}

// Subscription identifies one registration with a ResizeService.
type Subscription interface{}

// ResizeService delivers "size changed" reports for a host surface.
type ResizeService interface {
	Subscribe(target string, fn func(Size)) Subscription
	Unsubscribe(sub Subscription)
}

// Options configures a Controller.
type Options struct {
	// Density, when positive, is the density to target verbatim.
	Density float64

	// DevicePixelRatio is the platform density signal used when Density is
	// zero. Defaults to DefaultDevicePixelRatio.
	DevicePixelRatio float64

	// Resize receives the controller's subscription at Attach. A nil service
	// means size changes are only delivered through Resize.
	Resize ResizeService
}

// State is the selection exposed to the presentation layer.
type State struct {
	Candidate  ImageCandidate `json:"candidate"`
	Vector     bool           `json:"vector"`
	Phase      Phase          `json:"phase"`
	Density    float64        `json:"density"`
	Size       Size           `json:"size"`
	Settled    bool           `json:"settled"`
	FitPending bool           `json:"fit_pending"`
}

// Controller owns a picture instance's selection state and decides when
// selection runs.
type Controller struct {
	mu       sync.Mutex
	set      CandidateSet
	resize   ResizeService
	state    State
	sub      Subscription
	attached bool

	// settleShown latches once TakeSettled has reported the first fit.
	settleShown bool
}

// New resolves the target density for set and runs initial selection. The
// returned controller is Provisional. Errors are *ConfigurationError; no
// controller is returned with an undefined selection.
func New(set CandidateSet, opts Options) (*Controller, error) {
	density := ResolveDensity(set, opts)
	sel, err := SelectInitial(set, density)
	if err != nil {
		return nil, err
	}

	return &Controller{
		set:    set,
		resize: opts.Resize,
		state: State{
			Candidate: sel.Candidate,
			Vector:    sel.Vector,
			Phase:     PhaseProvisional,
			Density:   density,
		},
	}, nil
}

// Attach performs the mount-time work: it subscribes to resize reports for
// target and fits to the size m reports. When m cannot measure yet the state
// is marked FitPending and the first fit happens on the next resize report or
// Refit. Vector pictures neither subscribe nor fit.
//
// Every successful Attach must be paired with Detach.
func (c *Controller) Attach(target string, m Measurer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.state.Phase == PhaseDetached:
		return ErrDetached
	case c.attached:
		return ErrAlreadyAttached
	}
	c.attached = true

	if c.state.Vector {
		return nil
	}

	if c.resize != nil {
		c.sub = c.resize.Subscribe(target, c.Resize)
	}

	size, ok := measure(m)
	if !ok {
		c.state.FitPending = true
		return nil
	}
	c.fitLocked(size)
	return nil
}

// Resize refits to size. It is the callback registered with the resize
// service and may also be called directly by an adapter. Reports for vector,
// unattached or detached pictures are ignored.
func (c *Controller) Resize(size Size) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Vector || !c.attached || c.state.Phase == PhaseDetached {
		return
	}
	c.fitLocked(size)
}

// Refit measures again and fits when the measurement succeeds. It reports
// whether a fit ran.
func (c *Controller) Refit(m Measurer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Vector || !c.attached || c.state.Phase == PhaseDetached {
		return false
	}
	size, ok := measure(m)
	if !ok {
		return false
	}
	c.fitLocked(size)
	return true
}

// Detach releases the resize subscription and ends the controller's
// lifecycle. It is safe to call more than once and on a controller that was
// never attached.
func (c *Controller) Detach() {
	c.mu.Lock()
	sub, resize := c.sub, c.resize
	c.sub = nil
	c.attached = false
	c.state.Phase = PhaseDetached
	c.state.FitPending = false
	c.mu.Unlock()

	if sub != nil && resize != nil {
		resize.Unsubscribe(sub)
	}
}

// State returns a snapshot of the current selection.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Candidates returns the candidate set the controller selects from.
func (c *Controller) Candidates() CandidateSet {
	return c.set
}

// TakeSettled reports true exactly once: on the first call after the first
// fit has completed.
func (c *Controller) TakeSettled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Settled || c.settleShown {
		return false
	}
	c.settleShown = true
	return true
}

func (c *Controller) fitLocked(size Size) {
	c.state.Candidate = SelectBestFit(c.set, Target{
		Density: c.state.Density,
		Width:   size.Width,
		Height:  size.Height,
	})
	c.state.Size = size
	c.state.Phase = PhaseFitted
	c.state.Settled = true
	c.state.FitPending = false
}

func measure(m Measurer) (Size, bool) {
	if m == nil {
		return Size{}, false
	}
	return m.Measure()
}
