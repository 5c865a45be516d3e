package widgets

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/theme"
)

// Kind identifies the variant of a widget.
type Kind int

const (
	KindLayout Kind = iota
	KindContainer
	KindSurface
	KindLabel
	KindImage
	KindController
	// KindComposite covers widgets that only exist to expand into others:
	// buttons, tool bars and host-defined Custom widgets.
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindContainer:
		return "container"
	case KindSurface:
		return "surface"
	case KindLabel:
		return "label"
	case KindImage:
		return "image"
	case KindController:
		return "controller"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Widget is a node of the widget tree.
type Widget interface {
	// Build performs one expansion step. Leaf widgets return a copy of
	// themselves with their style resolved; composite widgets return the
	// Layout or Surface that substitutes for them.
	Build(th *theme.Theme) Widget

	// StyleOf returns the widget's visual attributes, falling back to th.
	StyleOf(th *theme.Theme) theme.Style

	// Kind reports the widget's variant.
	Kind() Kind

	sealed()
}

// resolveStyle returns own if set, the theme fallback otherwise.
func resolveStyle(own *theme.Style, th *theme.Theme) theme.Style {
	if own != nil {
		return *own
	}
	return theme.OrDefault(th).Style
}

func stylePtr(s theme.Style) *theme.Style {
	return &s
}

// Describe returns a short human-readable name for w, used in diagnostics.
func Describe(w Widget) string {
	switch w := w.(type) {
	case nil:
		return "<nil>"
	case *Layout:
		return fmt.Sprintf("layout(%s, %d children)", w.Direction, len(w.Children))
	case *Container:
		return fmt.Sprintf("container(%s)", w.Size)
	case *Label:
		return fmt.Sprintf("label(%q)", w.Text)
	case *Image:
		return fmt.Sprintf("image(%q)", w.Source)
	case *Controller:
		if w.Name != "" {
			return fmt.Sprintf("controller(%s %q)", w.Detects, w.Name)
		}
		return fmt.Sprintf("controller(%s)", w.Detects)
	case *Custom:
		if w.Name != "" {
			return fmt.Sprintf("custom(%q)", w.Name)
		}
		return "custom"
	default:
		return w.Kind().String()
	}
}
