package widgets

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/theme"
)

// ControllerKind identifies which events a Controller detects.
type ControllerKind int

const (
	// AnyController matches every controller when browsing; it is not a
	// valid value for Controller.Detects.
	AnyController ControllerKind = iota
	// TapDetector reacts to a pointer going down inside its zone.
	TapDetector
)

func (k ControllerKind) String() string {
	switch k {
	case AnyController:
		return "any"
	case TapDetector:
		return "tap"
	default:
		return fmt.Sprintf("ControllerKind(%d)", int(k))
	}
}

// EventKind identifies an input event delivered to controllers.
type EventKind int

const (
	EventTap EventKind = iota
)

// Event is an input event translated by the host.
type Event struct {
	Kind  EventKind
	Point graphics.Point
}

// Handler receives the events of a Controller.
type Handler interface {
	HandleEvent(c *Controller, ev Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(c *Controller, ev Event)

// HandleEvent calls f(c, ev).
func (f HandlerFunc) HandleEvent(c *Controller, ev Event) {
	f(c, ev)
}

// Controller wraps a child widget and calls its Handler when an event it
// detects lands inside the child's zone.
//
// The zone is not computed by the controller. It is written by the engine's
// controller browser after each build, from the drawables the build produced,
// and is stale until then.
//
//	NewTapDetector("save", &TextButton{Label: &Label{Text: "Save"}},
//	    HandlerFunc(func(c *Controller, ev Event) {
//	        c.Child.(*TextButton).Style = &pressed
//	    }))
type Controller struct {
	// Name identifies the controller in diagnostics and documents.
	Name    string
	Detects ControllerKind
	Child   Widget
	Handler Handler

	zone    graphics.Zone
	hasZone bool
}

// NewTapDetector returns a controller calling h when child is tapped.
func NewTapDetector(name string, child Widget, h Handler) *Controller {
	return &Controller{
		Name:    name,
		Detects: TapDetector,
		Child:   child,
		Handler: h,
	}
}

// Zone returns the zone recorded by the last browse pass.
// ok is false if the controller has never been located.
func (c *Controller) Zone() (zone graphics.Zone, ok bool) {
	return c.zone, c.hasZone
}

// SetZone records the zone the controller's child occupies.
func (c *Controller) SetZone(z graphics.Zone) {
	c.zone = z
	c.hasZone = true
}

// Contains reports whether p lies inside the controller's recorded zone.
func (c *Controller) Contains(p graphics.Point) bool {
	return c.hasZone && c.zone.Contains(p)
}

// Fire delivers ev to the controller's handler, if any.
func (c *Controller) Fire(ev Event) {
	if c.Handler != nil {
		c.Handler.HandleEvent(c, ev)
	}
}

// Build is transparent: the controller builds into whatever its child builds
// into. A child Layout is returned as is so that it is laid out in place.
func (c *Controller) Build(th *theme.Theme) Widget {
	switch child := c.Child.(type) {
	case nil:
		return &Surface{Style: stylePtr(theme.OrDefault(th).Style)}
	case *Layout:
		return child
	default:
		return child.Build(th)
	}
}

// StyleOf returns the child's style.
func (c *Controller) StyleOf(th *theme.Theme) theme.Style {
	if c.Child == nil {
		return theme.OrDefault(th).Style
	}
	return c.Child.StyleOf(th)
}

// Kind returns KindController.
func (c *Controller) Kind() Kind { return KindController }

func (c *Controller) sealed() {}
