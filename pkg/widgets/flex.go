package widgets

import "fmt"

// Direction is the axis along which a Layout stacks its children.
// Row is the zero value.
type Direction int

const (
	// Row stacks children left to right; flexible children share the width.
	Row Direction = iota
	// Column stacks children top to bottom; flexible children share the height.
	Column
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "row", "":
		*d = Row
	case "column":
		*d = Column
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Align is an alignment rule for the children of a Layout.
//
// A Layout's XAlign accepts AlignLeft, AlignCenter and AlignRight; its YAlign
// accepts AlignTop, AlignCenter and AlignBottom. AlignCenter is the zero value
// and is valid on both axes.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	switch string(text) {
	case "center", "":
		*a = AlignCenter
	case "left":
		*a = AlignLeft
	case "right":
		*a = AlignRight
	case "top":
		*a = AlignTop
	case "bottom":
		*a = AlignBottom
	default:
		return fmt.Errorf("unknown alignment %q", text)
	}
	return nil
}

// IsHorizontal reports whether a is legal on the x axis.
func (a Align) IsHorizontal() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// IsVertical reports whether a is legal on the y axis.
func (a Align) IsVertical() bool {
	return a == AlignTop || a == AlignCenter || a == AlignBottom
}

// HorizontalAligns lists the alignments legal on the x axis.
var HorizontalAligns = []Align{AlignLeft, AlignCenter, AlignRight}

// VerticalAligns lists the alignments legal on the y axis.
var VerticalAligns = []Align{AlignTop, AlignCenter, AlignBottom}

// Overflow tells the host renderer what to do with children painted past the
// bounds of their layout.
type Overflow int

const (
	// OverflowIgnore paints children unclipped, even past the layout's zone.
	OverflowIgnore Overflow = iota
	// OverflowHide clips children to the layout's zone.
	OverflowHide
)

// String returns a human-readable representation of the overflow policy.
func (o Overflow) String() string {
	switch o {
	case OverflowIgnore:
		return "ignore"
	case OverflowHide:
		return "hide"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Overflow) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ignore", "":
		*o = OverflowIgnore
	case "hide":
		*o = OverflowHide
	default:
		return fmt.Errorf("unknown overflow %q", text)
	}
	return nil
}
