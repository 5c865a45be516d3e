// Package layout computes the geometry of a Layout's children.
//
// Geometry is computed in two steps. [SizeIn] gives every child a size, then
// [AlignAt] positions the children inside the layout's zone from those sizes.
// Both return the layout's own value first, followed by one value per child in
// declaration order, so that index i+1 always refers to child i.
package layout

import (
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/widgets"
)

// SizeIn returns the size of each child of l laid out in a zone of the given
// size, prefixed by the zone size itself.
//
// Containers keep their own size. Every other child is flexible and receives
// an equal share of what the Containers leave on the main axis, rounded down,
// and the whole zone on the cross axis. When the Containers already exceed the
// zone, flexible children get a zero main-axis extent.
//
// A layout without children yields the zone size alone.
func SizeIn(l *widgets.Layout, zone graphics.Size) []graphics.Size {
	sizes := make([]graphics.Size, 0, len(l.Children)+1)
	sizes = append(sizes, zone)
	if len(l.Children) == 0 {
		return sizes
	}

	var fixed graphics.Size
	flexCount := 0
	for _, child := range l.Children {
		if c, ok := child.(*widgets.Container); ok {
			fixed = fixed.Add(c.Size)
		} else {
			flexCount++
		}
	}

	var flex graphics.Size
	if flexCount > 0 {
		switch l.Direction {
		case widgets.Column:
			flex = graphics.Size{
				Width:  zone.Width,
				Height: max(0, zone.Height-fixed.Height) / flexCount,
			}
		default:
			flex = graphics.Size{
				Width:  max(0, zone.Width-fixed.Width) / flexCount,
				Height: zone.Height,
			}
		}
	}

	for _, child := range l.Children {
		if c, ok := child.(*widgets.Container); ok {
			sizes = append(sizes, c.Size)
		} else {
			sizes = append(sizes, flex)
		}
	}
	return sizes
}
