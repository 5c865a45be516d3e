// Package theme holds the styling attributes consumed by widgets while they
// build. A *Theme is passed explicitly through every build call; widgets whose
// own style is unset fall back to the theme they receive.
package theme

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/graphics"
)

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Brightness) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Brightness) UnmarshalText(text []byte) error {
	switch string(text) {
	case "light", "":
		*b = BrightnessLight
	case "dark":
		*b = BrightnessDark
	default:
		return fmt.Errorf("unknown brightness %q", text)
	}
	return nil
}

// Style is the opaque visual attribute set of a surfaced widget.
type Style struct {
	Color   graphics.Color
	Borders graphics.Borders
	Radius  graphics.Radius
}

// LabelStyle is the fallback style for labels.
type LabelStyle struct {
	Color graphics.Color
	// Text names an entry of the TextTheme (e.g. "paragraph1").
	Text string
}

// Theme contains the styling fallbacks used while building widgets.
type Theme struct {
	// Fonts lists the font families available to labels.
	Fonts []FontFamily

	// Text defines text styles.
	Text TextTheme

	// Label is the fallback style for labels without their own style.
	Label LabelStyle

	// Style is the fallback style for surfaced widgets without their own style.
	Style Style

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *Theme {
	return &Theme{
		Text: DefaultTextTheme(),
		Label: LabelStyle{
			Color: graphics.RGB(0, 0, 0),
			Text:  "paragraph1",
		},
		Style: Style{
			Color: graphics.RGB(180, 180, 180),
		},
		Brightness: BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *Theme {
	return &Theme{
		Text: DefaultTextTheme(),
		Label: LabelStyle{
			Color: graphics.RGB(230, 230, 230),
			Text:  "paragraph1",
		},
		Style: Style{
			Color: graphics.RGB(48, 48, 48),
		},
		Brightness: BrightnessDark,
	}
}

// Default returns the theme used when a build is given a nil theme.
func Default() *Theme {
	return DefaultLightTheme()
}

// OrDefault returns t, or [Default] if t is nil.
func OrDefault(t *Theme) *Theme {
	if t == nil {
		return Default()
	}
	return t
}

// Font returns the font family with the given name.
func (t *Theme) Font(name string) (FontFamily, bool) {
	for _, f := range t.Fonts {
		if f.Name == name {
			return f, true
		}
	}
	return FontFamily{}, false
}

// CopyWith returns a new Theme with the specified fields overridden.
func (t *Theme) CopyWith(text *TextTheme, label *LabelStyle, style *Style) *Theme {
	result := &Theme{
		Fonts:      append([]FontFamily(nil), t.Fonts...),
		Text:       t.Text,
		Label:      t.Label,
		Style:      t.Style,
		Brightness: t.Brightness,
	}
	if text != nil {
		result.Text = *text
	}
	if label != nil {
		result.Label = *label
	}
	if style != nil {
		result.Style = *style
	}
	return result
}
