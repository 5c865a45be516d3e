// Package rendering turns a widget tree into the flat list of drawables a
// host renderer paints.
//
// [Build] walks the tree in pre-order: each layout emits its own surface
// first, then the drawables of its children in declaration order. Every
// drawable carries the group id of the child slot that produced it, so the
// drawables of one widget expansion can be traced back to a single node of
// the tree.
package rendering

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/widgets"
)

// ObjectKind classifies what a drawable paints.
type ObjectKind int

const (
	ObjectSurface ObjectKind = iota
	ObjectLabel
	ObjectImage
	// ObjectOpaque is any other widget. The host decides how to paint it.
	ObjectOpaque
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectSurface:
		return "surface"
	case ObjectLabel:
		return "label"
	case ObjectImage:
		return "image"
	case ObjectOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("ObjectKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ObjectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Object is the classified widget held by a drawable. Exactly one of the
// pointer fields matching Kind is set.
type Object struct {
	Kind    ObjectKind
	Surface *widgets.Surface
	Label   *widgets.Label
	Image   *widgets.Image
	Opaque  widgets.Widget
}

// Classify wraps w into the Object variant matching its concrete type.
func Classify(w widgets.Widget) Object {
	switch w := w.(type) {
	case *widgets.Surface:
		return Object{Kind: ObjectSurface, Surface: w}
	case *widgets.Label:
		return Object{Kind: ObjectLabel, Label: w}
	case *widgets.Image:
		return Object{Kind: ObjectImage, Image: w}
	default:
		return Object{Kind: ObjectOpaque, Opaque: w}
	}
}

// Widget returns the widget held by the object.
func (o Object) Widget() widgets.Widget {
	switch o.Kind {
	case ObjectSurface:
		return o.Surface
	case ObjectLabel:
		return o.Label
	case ObjectImage:
		return o.Image
	default:
		return o.Opaque
	}
}

// Drawable is a positioned, classified leaf render unit.
type Drawable struct {
	Object Object
	// GroupID links the drawable to the child slot that produced it.
	GroupID int
	Zone    graphics.Zone
	// Clip is the area the host must clip the drawable to, set when an
	// ancestor layout hides its overflow. Nil means unclipped.
	Clip *graphics.Zone
}

// Visible returns the part of the drawable's zone left after clipping.
func (d Drawable) Visible() graphics.Zone {
	if d.Clip == nil {
		return d.Zone
	}
	return d.Zone.Intersect(*d.Clip)
}

func (d Drawable) String() string {
	s := fmt.Sprintf("#%d %s %s", d.GroupID, widgets.Describe(d.Object.Widget()), d.Zone)
	if d.Clip != nil {
		s += " clip " + d.Clip.String()
	}
	return s
}

// At returns the first drawable of group id.
func At(drawables []Drawable, id int) (Drawable, bool) {
	for _, d := range drawables {
		if d.GroupID == id {
			return d, true
		}
		if d.GroupID > id {
			break
		}
	}
	return Drawable{}, false
}

// Groups splits drawables into runs sharing one group id.
func Groups(drawables []Drawable) [][]Drawable {
	var groups [][]Drawable
	start := 0
	for i := 1; i <= len(drawables); i++ {
		if i == len(drawables) || drawables[i].GroupID != drawables[start].GroupID {
			groups = append(groups, drawables[start:i])
			start = i
		}
	}
	return groups
}
