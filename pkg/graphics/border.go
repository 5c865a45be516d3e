package graphics

// Side indexes the four borders of a styled surface.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Border is a single stroked edge of a surface.
// A zero Width means no border is drawn on that side.
type Border struct {
	Width int   `yaml:"width" toml:"width"`
	Color Color `yaml:"color" toml:"color"`
}

// Borders holds one Border per Side, indexed by Side.
type Borders [4]Border

// UniformBorders returns Borders with the same border on every side.
func UniformBorders(b Border) Borders {
	return Borders{b, b, b, b}
}

// IsZero reports whether no side has a visible border.
func (b Borders) IsZero() bool {
	for _, side := range b {
		if side.Width > 0 {
			return false
		}
	}
	return true
}

// Radius is a corner radius applied uniformly to all four corners.
type Radius float64
