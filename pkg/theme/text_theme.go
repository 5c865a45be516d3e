package theme

import "fmt"

// FontWeight is the weight of a font face.
type FontWeight int

const (
	FontWeightRegular FontWeight = iota
	FontWeightMedium
	FontWeightBold
)

func (w FontWeight) String() string {
	switch w {
	case FontWeightRegular:
		return "regular"
	case FontWeightMedium:
		return "medium"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (w FontWeight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *FontWeight) UnmarshalText(text []byte) error {
	switch string(text) {
	case "regular", "":
		*w = FontWeightRegular
	case "medium":
		*w = FontWeightMedium
	case "bold":
		*w = FontWeightBold
	default:
		return fmt.Errorf("unknown font weight %q", text)
	}
	return nil
}

// FontFamily names a font and the file it is loaded from by the host.
type FontFamily struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// TextStyle describes how a label's text should be rendered by the host.
type TextStyle struct {
	Size    int        `toml:"size"`
	Weight  FontWeight `toml:"weight"`
	Spacing float64    `toml:"spacing"`
}

// TextTheme defines the named text styles.
type TextTheme struct {
	Code       TextStyle
	Heading1   TextStyle
	Heading2   TextStyle
	Heading3   TextStyle
	Heading4   TextStyle
	Heading5   TextStyle
	Heading6   TextStyle
	Paragraph1 TextStyle
	Paragraph2 TextStyle
	Paragraph3 TextStyle
}

// DefaultTextTheme returns the default type scale.
func DefaultTextTheme() TextTheme {
	return TextTheme{
		Code:       TextStyle{Size: 12, Spacing: 0.25},
		Heading1:   TextStyle{Size: 57},
		Heading2:   TextStyle{Size: 45},
		Heading3:   TextStyle{Size: 36},
		Heading4:   TextStyle{Size: 32},
		Heading5:   TextStyle{Size: 28},
		Heading6:   TextStyle{Size: 24},
		Paragraph1: TextStyle{Size: 16, Spacing: 0.15},
		Paragraph2: TextStyle{Size: 14, Spacing: 0.25},
		Paragraph3: TextStyle{Size: 12, Spacing: 0.40},
	}
}

// Lookup returns the text style registered under name.
func (t *TextTheme) Lookup(name string) (TextStyle, bool) {
	if p := t.entry(name); p != nil {
		return *p, true
	}
	return TextStyle{}, false
}

func (t *TextTheme) entry(name string) *TextStyle {
	switch name {
	case "code":
		return &t.Code
	case "heading1":
		return &t.Heading1
	case "heading2":
		return &t.Heading2
	case "heading3":
		return &t.Heading3
	case "heading4":
		return &t.Heading4
	case "heading5":
		return &t.Heading5
	case "heading6":
		return &t.Heading6
	case "paragraph1":
		return &t.Paragraph1
	case "paragraph2":
		return &t.Paragraph2
	case "paragraph3":
		return &t.Paragraph3
	}
	return nil
}
