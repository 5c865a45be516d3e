package layout

import (
	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/widgets"
)

// AlignAt returns the position of each child of l, prefixed by anchor, the
// position of the layout itself. sizes must be the result of [SizeIn] for the
// same layout.
//
// Along the main axis children are stacked contiguously: from the start edge
// (Left, Top), from the end edge (Right, Bottom), or as a centered band
// (Center). Along the cross axis each child is aligned on its own. Offsets are
// never negative, so children that do not fit overflow past the end edge.
//
// AlignAt returns a KindConfig error wrapping an [errors.AlignError] if XAlign
// is not Left, Center or Right, or YAlign is not Top, Center or Bottom.
func AlignAt(l *widgets.Layout, anchor graphics.Point, sizes []graphics.Size) ([]graphics.Point, error) {
	if err := checkAligns(l); err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, nil
	}

	parent := sizes[0]
	children := sizes[1:]

	// Main and cross extents, swapped for columns.
	mainOf := func(s graphics.Size) int { return s.Width }
	crossOf := func(s graphics.Size) int { return s.Height }
	mainAlign, crossAlign := l.XAlign, l.YAlign
	if l.Direction == widgets.Column {
		mainOf = func(s graphics.Size) int { return s.Height }
		crossOf = func(s graphics.Size) int { return s.Width }
		mainAlign, crossAlign = l.YAlign, l.XAlign
	}

	total := 0
	for _, s := range children {
		total += mainOf(s)
	}
	// Start of the band for Center and for Right/Bottom.
	center := max(0, (mainOf(parent)-total)/2)
	end := max(0, mainOf(parent)-total)

	positions := make([]graphics.Point, 0, len(sizes))
	positions = append(positions, anchor)

	offset := 0
	for _, s := range children {
		var main int
		switch mainAlign {
		case widgets.AlignLeft, widgets.AlignTop:
			main = offset
		case widgets.AlignCenter:
			main = center + offset
		default:
			main = end + offset
		}

		var cross int
		switch crossAlign {
		case widgets.AlignLeft, widgets.AlignTop:
			cross = 0
		case widgets.AlignCenter:
			cross = (crossOf(parent) - crossOf(s)) / 2
		default:
			cross = crossOf(parent) - crossOf(s)
		}

		cross = max(0, cross)
		if l.Direction == widgets.Column {
			positions = append(positions, anchor.Add(graphics.Point{X: cross, Y: main}))
		} else {
			positions = append(positions, anchor.Add(graphics.Point{X: main, Y: cross}))
		}
		offset += mainOf(s)
	}
	return positions, nil
}

// checkAligns validates the alignment of both axes of l.
func checkAligns(l *widgets.Layout) error {
	if !l.XAlign.IsHorizontal() {
		return alignError(l, "x", "XAlign", l.XAlign, widgets.HorizontalAligns)
	}
	if !l.YAlign.IsVertical() {
		return alignError(l, "y", "YAlign", l.YAlign, widgets.VerticalAligns)
	}
	return nil
}

func alignError(l *widgets.Layout, axis, field string, value widgets.Align, allowed []widgets.Align) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = a.String()
	}
	return &errors.Error{
		Op:     "layout.AlignAt",
		Kind:   errors.KindConfig,
		Widget: widgets.Describe(l),
		Err: &errors.AlignError{
			Axis:    axis,
			Field:   field,
			Value:   value.String(),
			Allowed: names,
		},
	}
}
