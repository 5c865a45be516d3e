package graphics

import "fmt"

// Point is a position on the drawing surface in integer units.
// Points may be negative while offsets are being computed.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size represents width and height dimensions.
// Width and Height are never negative once produced by the layout pipeline.
type Size struct {
	Width  int
	Height int
}

// Add returns the component-wise sum of s and other.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// IsEmpty reports whether the size covers no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Zone is a positioned and sized rectangle. It is the unit of geometric
// exchange between the sizer, the aligner, the drawable builder and the
// controller browser.
type Zone struct {
	Position Point
	Size     Size
}

// ZoneFromXYWH constructs a Zone from its left, top, width and height.
func ZoneFromXYWH(x, y, width, height int) Zone {
	return Zone{
		Position: Point{X: x, Y: y},
		Size:     Size{Width: width, Height: height},
	}
}

// X returns the left edge of the zone.
func (z Zone) X() int { return z.Position.X }

// Y returns the top edge of the zone.
func (z Zone) Y() int { return z.Position.Y }

// Width returns the width of the zone.
func (z Zone) Width() int { return z.Size.Width }

// Height returns the height of the zone.
func (z Zone) Height() int { return z.Size.Height }

// Right returns the right edge of the zone (X + Width).
func (z Zone) Right() int { return z.Position.X + z.Size.Width }

// Bottom returns the bottom edge of the zone (Y + Height).
func (z Zone) Bottom() int { return z.Position.Y + z.Size.Height }

// Contains reports whether p lies inside the zone. Both edges are inclusive,
// so a point on the right or bottom boundary is inside.
func (z Zone) Contains(p Point) bool {
	return z.X() <= p.X && p.X <= z.Right() &&
		z.Y() <= p.Y && p.Y <= z.Bottom()
}

// Intersect returns the overlap of z and other.
// Returns an empty zone at z's position if they don't overlap.
func (z Zone) Intersect(other Zone) Zone {
	left := max(z.X(), other.X())
	top := max(z.Y(), other.Y())
	right := min(z.Right(), other.Right())
	bottom := min(z.Bottom(), other.Bottom())
	if left > right || top > bottom {
		return Zone{Position: z.Position}
	}
	return ZoneFromXYWH(left, top, right-left, bottom-top)
}

func (z Zone) String() string {
	return fmt.Sprintf("%s %s", z.Position, z.Size)
}
