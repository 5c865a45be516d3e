package testing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/go-drift/framekit/pkg/engine"
	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

const (
	// DefaultTestWidth is the default width of the test zone.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test zone.
	DefaultTestHeight = 600
)

// WidgetTester builds widget trees through an [engine.View] and records the
// errors reported while doing so, without any host renderer.
type WidgetTester struct {
	zone  graphics.Zone
	theme *theme.Theme
	root  *widgets.Layout
	view  *engine.View

	reports *reportRecorder
}

// NewWidgetTester creates a tester with the default test zone and theme.
// It installs an error handler recording reports; call Cleanup when done, or
// use NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		zone:    graphics.ZoneFromXYWH(0, 0, DefaultTestWidth, DefaultTestHeight),
		theme:   theme.Default(),
		reports: &reportRecorder{},
	}
	errors.SetHandler(t.reports)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the default error handler.
func (t *WidgetTester) Cleanup() {
	errors.SetHandler(nil)
	t.view = nil
	t.root = nil
}

// SetZone sets the zone trees are laid out in. It applies to the mounted
// tree immediately.
func (t *WidgetTester) SetZone(zone graphics.Zone) error {
	t.zone = zone
	if t.view == nil {
		return nil
	}
	_, err := t.view.Rebuild(zone)
	return err
}

// SetSize sets the size of the test zone, keeping it at the origin.
func (t *WidgetTester) SetSize(size graphics.Size) error {
	return t.SetZone(graphics.Zone{Size: size})
}

// SetTheme replaces the theme. Must be called before PumpWidget.
func (t *WidgetTester) SetTheme(th *theme.Theme) {
	t.theme = theme.OrDefault(th)
}

// PumpWidget mounts root, replacing any previous tree, and builds it.
func (t *WidgetTester) PumpWidget(root *widgets.Layout) error {
	t.root = root
	t.view = engine.NewView(t.zone, root, t.theme)
	_, err := t.view.Build()
	return err
}

// Pump rebuilds the mounted tree. Call it after mutating the tree from the
// test itself; taps rebuild on their own.
func (t *WidgetTester) Pump() error {
	if t.view == nil {
		return fmt.Errorf("Pump: no widget mounted")
	}
	_, err := t.view.Build()
	return err
}

// Root returns the mounted tree.
func (t *WidgetTester) Root() *widgets.Layout {
	return t.root
}

// View returns the view driving the mounted tree, or nil before PumpWidget.
func (t *WidgetTester) View() *engine.View {
	return t.view
}

// Drawables returns the drawables of the last build.
func (t *WidgetTester) Drawables() []rendering.Drawable {
	if t.view == nil {
		return nil
	}
	drawables, err := t.view.Drawables()
	if err != nil {
		return nil
	}
	return drawables
}

// Find evaluates a finder against the drawables of the last build.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{
		matches: finder.Evaluate(t.Drawables()),
		finder:  finder,
	}
}

// Controller returns the controller named name in the mounted tree, with its
// zone refreshed from the last build.
func (t *WidgetTester) Controller(name string) (*widgets.Controller, error) {
	if t.view == nil {
		return nil, fmt.Errorf("Controller: no widget mounted")
	}
	var found *widgets.Controller
	err := engine.ForEachController(t.root, t.Drawables(), t.theme, widgets.AnyController, func(c *widgets.Controller) {
		if found == nil && c.Name == name {
			found = c
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("Controller: no controller named %q", name)
	}
	return found, nil
}

// Reports returns the errors reported through the errors package since the
// tester was created.
func (t *WidgetTester) Reports() []*errors.Error {
	return t.reports.errorList()
}

// Panics returns the panics reported through the errors package since the
// tester was created.
func (t *WidgetTester) Panics() []*errors.PanicError {
	return t.reports.panicErrors()
}

// dumpConfig prints drawables without pointer addresses so that dumps of two
// builds can be compared.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump returns a deep, human-readable dump of the drawables of the last
// build, for failure messages.
func (t *WidgetTester) Dump() string {
	return dumpConfig.Sdump(t.Drawables())
}

// reportRecorder is an errors.ErrorHandler keeping every report.
type reportRecorder struct {
	mu     sync.Mutex
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (r *reportRecorder) HandleError(err *errors.Error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

func (r *reportRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

func (r *reportRecorder) errorList() []*errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.Error(nil), r.errs...)
}

func (r *reportRecorder) panicErrors() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}
