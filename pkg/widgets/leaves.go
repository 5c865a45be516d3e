package widgets

import "github.com/go-drift/framekit/pkg/theme"

// Surface is a rectangle that can be coloured, bordered or both.
type Surface struct {
	// Style is the surface's own style; nil uses the theme fallback.
	Style *theme.Style
}

// Build returns a copy of the surface with its style resolved.
func (s *Surface) Build(th *theme.Theme) Widget {
	return &Surface{Style: stylePtr(s.StyleOf(th))}
}

// StyleOf returns the surface style.
func (s *Surface) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(s.Style, th)
}

// Kind returns KindSurface.
func (s *Surface) Kind() Kind { return KindSurface }

func (s *Surface) sealed() {}

// Label is a piece of text. Shaping and measuring the text is left to the
// host renderer; the layout pipeline only decides the zone it is drawn in.
type Label struct {
	Text string
	// Style is the label's own style; nil uses the theme's label fallback.
	Style *theme.LabelStyle
}

// Build returns a copy of the label with its style resolved.
func (l *Label) Build(th *theme.Theme) Widget {
	style := l.LabelStyleOf(th)
	return &Label{Text: l.Text, Style: &style}
}

// LabelStyleOf returns the label style.
func (l *Label) LabelStyleOf(th *theme.Theme) theme.LabelStyle {
	if l.Style != nil {
		return *l.Style
	}
	return theme.OrDefault(th).Label
}

// TextStyleOf returns the text style named by the label style, or the
// theme's first paragraph style if the name is unknown.
func (l *Label) TextStyleOf(th *theme.Theme) theme.TextStyle {
	th = theme.OrDefault(th)
	if ts, ok := th.Text.Lookup(l.LabelStyleOf(th).Text); ok {
		return ts
	}
	return th.Text.Paragraph1
}

// StyleOf returns a surface style carrying the label's colour.
func (l *Label) StyleOf(th *theme.Theme) theme.Style {
	return theme.Style{Color: l.LabelStyleOf(th).Color}
}

// Kind returns KindLabel.
func (l *Label) Kind() Kind { return KindLabel }

func (l *Label) sealed() {}

// Image references a picture to be painted by the host.
type Image struct {
	// Source is an opaque reference resolved by the host (a path, a URL, an
	// asset name).
	Source string
	// Ratio is the width:height aspect ratio of the picture, if known.
	Ratio [2]float64
	// Style is the image's own frame style; nil uses the theme fallback.
	Style *theme.Style
}

// Build returns a copy of the image with its style resolved.
func (i *Image) Build(th *theme.Theme) Widget {
	return &Image{Source: i.Source, Ratio: i.Ratio, Style: stylePtr(i.StyleOf(th))}
}

// StyleOf returns the image frame style.
func (i *Image) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(i.Style, th)
}

// Kind returns KindImage.
func (i *Image) Kind() Kind { return KindImage }

func (i *Image) sealed() {}
