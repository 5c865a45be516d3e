package testing

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/graphics"
)

// Tap taps the center of the first drawable matched by finder and returns how
// many tap detectors fired.
func (t *WidgetTester) Tap(finder Finder) (int, error) {
	d, ok := t.Find(finder).FirstOK()
	if !ok {
		return 0, fmt.Errorf("Tap: finder matched no drawables: %s", finder.Description())
	}
	return t.TapAt(center(d.Visible()))
}

// TapAt taps p and returns how many tap detectors fired. The tree is rebuilt
// if any did.
func (t *WidgetTester) TapAt(p graphics.Point) (int, error) {
	if t.view == nil {
		return 0, fmt.Errorf("TapAt: no widget mounted")
	}
	return t.view.Tap(p)
}

// TapController taps the center of the zone of the controller named name.
func (t *WidgetTester) TapController(name string) (int, error) {
	c, err := t.Controller(name)
	if err != nil {
		return 0, err
	}
	zone, ok := c.Zone()
	if !ok {
		return 0, fmt.Errorf("TapController: %q was not located in the last build", name)
	}
	return t.TapAt(center(zone))
}

func center(z graphics.Zone) graphics.Point {
	return graphics.Point{X: z.X() + z.Width()/2, Y: z.Y() + z.Height()/2}
}
