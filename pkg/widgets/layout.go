package widgets

import "github.com/go-drift/framekit/pkg/theme"

// Layout arranges an ordered list of children along its Direction.
//
// Container children keep their own size; every other child is flexible and
// receives an equal share of the space left on the main axis, plus the full
// cross-axis extent. XAlign and YAlign position the children inside the
// layout's zone.
//
// A Layout exclusively owns its children. A widget must not appear twice in a
// tree.
type Layout struct {
	Direction Direction
	XAlign    Align
	YAlign    Align
	Overflow  Overflow
	// Style is the layout's own surface style; nil uses the theme fallback.
	Style    *theme.Style
	Children []Widget
}

// RowOf returns a centered Row layout with the given children.
func RowOf(children ...Widget) *Layout {
	return &Layout{Direction: Row, Children: children}
}

// ColumnOf returns a centered Column layout with the given children.
func ColumnOf(children ...Widget) *Layout {
	return &Layout{Direction: Column, Children: children}
}

// WithAlign sets both alignments and returns the layout.
func (l *Layout) WithAlign(x, y Align) *Layout {
	l.XAlign = x
	l.YAlign = y
	return l
}

// WithOverflow sets the overflow policy and returns the layout.
func (l *Layout) WithOverflow(o Overflow) *Layout {
	l.Overflow = o
	return l
}

// WithStyle sets the layout's own surface style and returns the layout.
func (l *Layout) WithStyle(s theme.Style) *Layout {
	l.Style = &s
	return l
}

// Build returns the Surface painted behind the layout's children.
// The children themselves are laid out by the rendering package.
func (l *Layout) Build(th *theme.Theme) Widget {
	return &Surface{Style: stylePtr(l.StyleOf(th))}
}

// StyleOf returns the layout's surface style.
func (l *Layout) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(l.Style, th)
}

// Kind returns KindLayout.
func (l *Layout) Kind() Kind { return KindLayout }

func (l *Layout) sealed() {}
