package widgets

import (
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/theme"
)

// Container wraps a single child and gives it a fixed size.
//
// Inside a Layout a Container is a fixed child: the sizer never recomputes its
// Size, and the space left to flexible siblings is what remains after every
// Container has been served.
//
// A Container builds into its own surface with the child laid out on top at
// the same position and size, so it yields two drawables (or more, if the
// child itself expands) sharing one group id.
//
//	&Container{
//	    Size:  graphics.Size{Width: 100, Height: 50},
//	    Child: &Label{Text: "Fixed"},
//	}
type Container struct {
	Size  graphics.Size
	Child Widget
	// Style is the container's own surface style; nil uses the theme fallback.
	Style *theme.Style
}

// Build expands the container into a single-child layout whose surface is the
// container's own. Without a child the container is just a surface.
func (c *Container) Build(th *theme.Theme) Widget {
	style := c.StyleOf(th)
	if c.Child == nil {
		return &Surface{Style: &style}
	}
	return &Layout{
		Direction: Row,
		XAlign:    AlignCenter,
		YAlign:    AlignCenter,
		Overflow:  OverflowIgnore,
		Style:     &style,
		Children:  []Widget{c.Child},
	}
}

// StyleOf returns the container's surface style.
func (c *Container) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(c.Style, th)
}

// Kind returns KindContainer.
func (c *Container) Kind() Kind { return KindContainer }

func (c *Container) sealed() {}
