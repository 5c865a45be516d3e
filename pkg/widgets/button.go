package widgets

import "github.com/go-drift/framekit/pkg/theme"

// Button is a plain coloured button. It expands into a Surface; wrap it in a
// tap detector to react to taps.
//
//	NewTapDetector("go", &Button{Style: &theme.Style{Color: graphics.ColorBlue}}, handler)
type Button struct {
	// Style is the button's own style; nil uses the theme fallback.
	Style *theme.Style
}

// Build returns the surface that paints the button.
func (b *Button) Build(th *theme.Theme) Widget {
	return &Surface{Style: stylePtr(b.StyleOf(th))}
}

// StyleOf returns the button style.
func (b *Button) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(b.Style, th)
}

// Kind returns KindComposite.
func (b *Button) Kind() Kind { return KindComposite }

func (b *Button) sealed() {}

// TextButton is a button with a label painted over it.
//
// It expands into a centered layout whose surface is the button and whose
// only child is the label, so both drawables share the button's group id.
type TextButton struct {
	Label *Label
	// Style is the button's own style; nil uses the theme fallback.
	Style *theme.Style
}

// Build returns the layout that paints the button and its label.
func (b *TextButton) Build(th *theme.Theme) Widget {
	if b.Label == nil {
		return &Surface{Style: stylePtr(b.StyleOf(th))}
	}
	return overlay(b.StyleOf(th), b.Label)
}

// StyleOf returns the button style.
func (b *TextButton) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(b.Style, th)
}

// Kind returns KindComposite.
func (b *TextButton) Kind() Kind { return KindComposite }

func (b *TextButton) sealed() {}

// ImageButton is a button with an image painted over it.
type ImageButton struct {
	Image *Image
	// Style is the button's own style; nil uses the theme fallback.
	Style *theme.Style
}

// Build returns the layout that paints the button and its image.
func (b *ImageButton) Build(th *theme.Theme) Widget {
	if b.Image == nil {
		return &Surface{Style: stylePtr(b.StyleOf(th))}
	}
	return overlay(b.StyleOf(th), b.Image)
}

// StyleOf returns the button style.
func (b *ImageButton) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(b.Style, th)
}

// Kind returns KindComposite.
func (b *ImageButton) Kind() Kind { return KindComposite }

func (b *ImageButton) sealed() {}

// overlay returns a clipped, centered layout painted with style and holding
// content.
func overlay(style theme.Style, content Widget) *Layout {
	return &Layout{
		Direction: Row,
		XAlign:    AlignCenter,
		YAlign:    AlignCenter,
		Overflow:  OverflowHide,
		Style:     &style,
		Children:  []Widget{content},
	}
}
