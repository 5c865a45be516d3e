package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
)

// themeFile is the on-disk shape of a theme.toml. Every field is optional and
// overrides the default theme selected by Brightness.
type themeFile struct {
	Brightness *Brightness           `toml:"brightness,omitempty"`
	Style      *styleFile            `toml:"style,omitempty"`
	Label      *labelFile            `toml:"label,omitempty"`
	Fonts      []FontFamily          `toml:"fonts,omitempty"`
	Text       map[string]*TextStyle `toml:"text,omitempty"`
}

type styleFile struct {
	Color  *graphics.Color  `toml:"color,omitempty"`
	Border *graphics.Border `toml:"border,omitempty"`
	Radius *float64         `toml:"radius,omitempty"`
}

type labelFile struct {
	Color *graphics.Color `toml:"color,omitempty"`
	Text  *string         `toml:"text,omitempty"`
}

// textStyleNames lists the TextTheme entries in declaration order.
var textStyleNames = []string{
	"code",
	"heading1", "heading2", "heading3", "heading4", "heading5", "heading6",
	"paragraph1", "paragraph2", "paragraph3",
}

// LoadFile reads a theme from a TOML file. Errors are of kind
// errors.KindTheme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "theme.LoadFile", Kind: errors.KindTheme, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	th, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.Error{Op: "theme.LoadFile", Kind: errors.KindTheme, Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}
	return th, nil
}

// Decode reads a TOML theme from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Theme, error) {
	var f themeFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}

	th := DefaultLightTheme()
	if f.Brightness != nil && *f.Brightness == BrightnessDark {
		th = DefaultDarkTheme()
	}

	if s := f.Style; s != nil {
		if s.Color != nil {
			th.Style.Color = *s.Color
		}
		if s.Border != nil {
			th.Style.Borders = graphics.UniformBorders(*s.Border)
		}
		if s.Radius != nil {
			th.Style.Radius = graphics.Radius(*s.Radius)
		}
	}

	if l := f.Label; l != nil {
		if l.Color != nil {
			th.Label.Color = *l.Color
		}
		if l.Text != nil {
			if _, ok := th.Text.Lookup(*l.Text); !ok {
				return nil, fmt.Errorf("label.text: unknown text style %q", *l.Text)
			}
			th.Label.Text = *l.Text
		}
	}

	th.Fonts = append(th.Fonts, f.Fonts...)
	for i, font := range th.Fonts {
		if font.Name == "" {
			return nil, fmt.Errorf("fonts[%d]: name required", i)
		}
	}

	for name, style := range f.Text {
		entry := th.Text.entry(name)
		if entry == nil {
			return nil, fmt.Errorf("text: unknown text style %q", name)
		}
		if style != nil {
			*entry = *style
		}
	}

	return th, nil
}

// WriteFile saves th as a TOML theme file.
func WriteFile(path string, th *Theme) error {
	data, err := Encode(th)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Encode marshals th into the format read by [Decode].
func Encode(th *Theme) ([]byte, error) {
	th = OrDefault(th)
	brightness := th.Brightness
	styleColor := th.Style.Color
	border := th.Style.Borders[graphics.SideTop]
	radius := float64(th.Style.Radius)
	labelColor := th.Label.Color
	labelText := th.Label.Text

	f := themeFile{
		Brightness: &brightness,
		Style: &styleFile{
			Color:  &styleColor,
			Border: &border,
			Radius: &radius,
		},
		Label: &labelFile{
			Color: &labelColor,
			Text:  &labelText,
		},
		Fonts: th.Fonts,
		Text:  make(map[string]*TextStyle, len(textStyleNames)),
	}
	text := th.Text
	for _, name := range textStyleNames {
		style := *text.entry(name)
		f.Text[name] = &style
	}
	return toml.Marshal(f)
}
