package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

// frameCounter provides monotonic frame IDs across views.
var frameCounter atomic.Uint64

// View owns a widget tree and the drawables last built from it.
//
// All methods are safe for concurrent use; build and browse passes never
// overlap. Controller handlers run with the view locked and must not call back
// into it.
type View struct {
	mu        sync.Mutex
	zone      graphics.Zone
	root      *widgets.Layout
	theme     *theme.Theme
	drawables []rendering.Drawable
	frameID   uint64
	dirty     bool

	timings *BuildTimingBuffer
}

// NewView returns a view laying root out in zone with th. The first build
// happens on the first call needing drawables.
func NewView(zone graphics.Zone, root *widgets.Layout, th *theme.Theme) *View {
	return &View{
		zone:    zone,
		root:    root,
		theme:   theme.OrDefault(th),
		dirty:   true,
		timings: NewBuildTimingBuffer(0),
	}
}

// Build rebuilds the drawables and refreshes the zone of every controller.
// On error the drawables of the previous successful build are kept.
func (v *View) Build() ([]rendering.Drawable, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.buildLocked(); err != nil {
		return nil, err
	}
	return v.copyLocked(), nil
}

// Rebuild lays the tree out in a new zone, typically after a resize.
func (v *View) Rebuild(zone graphics.Zone) ([]rendering.Drawable, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.zone = zone
	if err := v.buildLocked(); err != nil {
		return nil, err
	}
	return v.copyLocked(), nil
}

// MarkNeedsBuild schedules a build before the next access to the drawables.
// Call it after mutating the tree outside of a controller handler.
func (v *View) MarkNeedsBuild() {
	v.mu.Lock()
	v.dirty = true
	v.mu.Unlock()
}

// Drawables returns the current drawables, building first if needed.
func (v *View) Drawables() ([]rendering.Drawable, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.ensureBuiltLocked(); err != nil {
		return nil, err
	}
	return v.copyLocked(), nil
}

// Tap delivers a tap at p to every tap detector whose zone contains it and
// returns how many fired. Handlers may mutate the tree; the view is rebuilt
// after any of them fired.
func (v *View) Tap(p graphics.Point) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.ensureBuiltLocked(); err != nil {
		return 0, err
	}

	var hits []*widgets.Controller
	err := ForEachController(v.root, v.drawables, v.theme, widgets.TapDetector, func(c *widgets.Controller) {
		if c.Contains(p) {
			hits = append(hits, c)
		}
	})
	if err != nil {
		return 0, err
	}

	ev := widgets.Event{Kind: widgets.EventTap, Point: p}
	for _, c := range hits {
		c.Fire(ev)
	}
	if len(hits) > 0 {
		if err := v.buildLocked(); err != nil {
			return len(hits), err
		}
	}
	return len(hits), nil
}

// Zone returns the zone the view lays out in.
func (v *View) Zone() graphics.Zone {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zone
}

// Snapshot returns the last build as a FrameSnapshot, building first if
// needed.
func (v *View) Snapshot() (FrameSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.ensureBuiltLocked(); err != nil {
		return FrameSnapshot{}, err
	}
	return NewFrameSnapshot(v.frameID, v.zone, v.drawables), nil
}

// Timings returns the durations of recent builds.
func (v *View) Timings() *BuildTimingBuffer {
	return v.timings
}

func (v *View) ensureBuiltLocked() error {
	if !v.dirty {
		return nil
	}
	return v.buildLocked()
}

func (v *View) buildLocked() error {
	start := time.Now()
	drawables, err := rendering.Build(v.zone, v.root, v.theme)
	if err != nil {
		return err
	}
	// Every controller is located once per build so that zones never
	// outlive the layout they were computed for.
	if err := ForEachController(v.root, drawables, v.theme, widgets.AnyController, nil); err != nil {
		return err
	}
	v.timings.Add(time.Since(start))
	v.drawables = drawables
	v.frameID = frameCounter.Add(1)
	v.dirty = false
	return nil
}

func (v *View) copyLocked() []rendering.Drawable {
	return append([]rendering.Drawable(nil), v.drawables...)
}
