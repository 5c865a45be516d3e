package widgets

import "github.com/go-drift/framekit/pkg/theme"

// Composer is implemented by host-defined widgets.
type Composer interface {
	// Compose performs one expansion step, like Widget.Build. Returning nil
	// leaves the custom widget unexpanded, and it is then emitted as an
	// opaque drawable for the host to paint itself.
	Compose(th *theme.Theme) Widget
}

// ComposerFunc adapts a function to the Composer interface.
type ComposerFunc func(th *theme.Theme) Widget

// Compose calls f(th).
func (f ComposerFunc) Compose(th *theme.Theme) Widget {
	return f(th)
}

// Custom hosts a widget defined outside this package. It is flexible inside
// a Layout, like every non-Container widget.
type Custom struct {
	Name     string
	Composer Composer
	// Style is reported by StyleOf; nil uses the theme fallback.
	Style *theme.Style
	// Data is carried untouched to the host through opaque drawables.
	Data any
}

// Build delegates to the Composer. A nil Composer, or one returning nil,
// yields the custom widget itself.
func (c *Custom) Build(th *theme.Theme) Widget {
	if c.Composer == nil {
		return c
	}
	if built := c.Composer.Compose(th); built != nil {
		return built
	}
	return c
}

// StyleOf returns the custom widget's style.
func (c *Custom) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(c.Style, th)
}

// Kind returns KindComposite.
func (c *Custom) Kind() Kind { return KindComposite }

func (c *Custom) sealed() {}
