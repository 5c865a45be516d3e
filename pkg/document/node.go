package document

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

// Node is the serialized form of a widget. Type selects the widget; the other
// fields are read according to it and must otherwise be left unset.
//
// Types: "row", "column", "layout", "container", "surface", "label", "image",
// "button", "text_button", "image_button", "toolbar", "tap".
type Node struct {
	Type string `yaml:"type" toml:"type"`

	// layout, row, column; direction on layout only
	Direction *widgets.Direction `yaml:"direction,omitempty" toml:"direction,omitempty"`
	XAlign    *widgets.Align     `yaml:"x_align,omitempty" toml:"x_align,omitempty"`
	YAlign    *widgets.Align     `yaml:"y_align,omitempty" toml:"y_align,omitempty"`
	Overflow  *widgets.Overflow  `yaml:"overflow,omitempty" toml:"overflow,omitempty"`
	Children  []*Node            `yaml:"children,omitempty" toml:"children,omitempty"`

	// container, tap
	Size  *SizeSpec `yaml:"size,omitempty" toml:"size,omitempty"`
	Child *Node     `yaml:"child,omitempty" toml:"child,omitempty"`

	// label, text_button
	Text       string          `yaml:"text,omitempty" toml:"text,omitempty"`
	LabelStyle *LabelStyleSpec `yaml:"label_style,omitempty" toml:"label_style,omitempty"`

	// image, image_button
	Source string    `yaml:"source,omitempty" toml:"source,omitempty"`
	Ratio  []float64 `yaml:"ratio,omitempty" toml:"ratio,omitempty"`

	// toolbar
	Title        string         `yaml:"title,omitempty" toml:"title,omitempty"`
	TitleAlign   *widgets.Align `yaml:"title_align,omitempty" toml:"title_align,omitempty"`
	Actions      []*Node        `yaml:"actions,omitempty" toml:"actions,omitempty"`
	ActionsAlign *widgets.Align `yaml:"actions_align,omitempty" toml:"actions_align,omitempty"`

	// tap
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`

	Style *StyleSpec `yaml:"style,omitempty" toml:"style,omitempty"`
}

// SizeSpec is a width and height pair.
type SizeSpec struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// StyleSpec is the serialized form of a theme.Style.
type StyleSpec struct {
	Color  graphics.Color   `yaml:"color" toml:"color"`
	Border *graphics.Border `yaml:"border,omitempty" toml:"border,omitempty"`
	Radius float64          `yaml:"radius,omitempty" toml:"radius,omitempty"`
}

// LabelStyleSpec is the serialized form of a theme.LabelStyle.
type LabelStyleSpec struct {
	Color graphics.Color `yaml:"color" toml:"color"`
	Text  string         `yaml:"text,omitempty" toml:"text,omitempty"`
}

func (s *StyleSpec) style() *theme.Style {
	if s == nil {
		return nil
	}
	st := &theme.Style{Color: s.Color, Radius: graphics.Radius(s.Radius)}
	if s.Border != nil {
		st.Borders = graphics.UniformBorders(*s.Border)
	}
	return st
}

func (s *LabelStyleSpec) labelStyle() *theme.LabelStyle {
	if s == nil {
		return nil
	}
	text := s.Text
	if text == "" {
		text = "paragraph1"
	}
	return &theme.LabelStyle{Color: s.Color, Text: text}
}

// converter turns nodes into widgets and collects the named tap detectors.
type converter struct {
	controllers map[string]*widgets.Controller
	names       []string
}

func (c *converter) widget(n *Node, path string) (widgets.Widget, error) {
	if n == nil {
		return nil, fmt.Errorf("%s: empty node", path)
	}
	switch n.Type {
	case "row", "column", "layout":
		return c.layout(n, path)
	case "container":
		if n.Size == nil {
			return nil, fmt.Errorf("%s: container requires a size", path)
		}
		if n.Size.Width < 0 || n.Size.Height < 0 {
			return nil, fmt.Errorf("%s: negative container size %dx%d", path, n.Size.Width, n.Size.Height)
		}
		w := &widgets.Container{
			Size:  graphics.Size{Width: n.Size.Width, Height: n.Size.Height},
			Style: n.Style.style(),
		}
		if n.Child != nil {
			child, err := c.widget(n.Child, path+".child")
			if err != nil {
				return nil, err
			}
			w.Child = child
		}
		return w, nil
	case "surface":
		return &widgets.Surface{Style: n.Style.style()}, nil
	case "label":
		return c.label(n), nil
	case "image":
		return c.image(n, path)
	case "button":
		return &widgets.Button{Style: n.Style.style()}, nil
	case "text_button":
		return &widgets.TextButton{Label: c.label(n), Style: n.Style.style()}, nil
	case "image_button":
		img, err := c.image(n, path)
		if err != nil {
			return nil, err
		}
		return &widgets.ImageButton{Image: img, Style: n.Style.style()}, nil
	case "toolbar":
		return c.toolbar(n, path)
	case "tap":
		return c.tap(n, path)
	case "":
		return nil, fmt.Errorf("%s: missing node type", path)
	default:
		return nil, fmt.Errorf("%s: unknown node type %q", path, n.Type)
	}
}

func (c *converter) layout(n *Node, path string) (*widgets.Layout, error) {
	if n.Direction != nil && n.Type != "layout" {
		return nil, fmt.Errorf("%s: direction is only allowed on layout nodes, a %s node is always a %s", path, n.Type, n.Type)
	}
	l := &widgets.Layout{Style: n.Style.style()}
	switch {
	case n.Type == "column":
		l.Direction = widgets.Column
	case n.Direction != nil:
		l.Direction = *n.Direction
	}
	if n.XAlign != nil {
		l.XAlign = *n.XAlign
	}
	if n.YAlign != nil {
		l.YAlign = *n.YAlign
	}
	if n.Overflow != nil {
		l.Overflow = *n.Overflow
	}
	for i, child := range n.Children {
		w, err := c.widget(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		l.Children = append(l.Children, w)
	}
	return l, nil
}

func (c *converter) label(n *Node) *widgets.Label {
	return &widgets.Label{Text: n.Text, Style: n.LabelStyle.labelStyle()}
}

func (c *converter) image(n *Node, path string) (*widgets.Image, error) {
	img := &widgets.Image{Source: n.Source, Style: n.Style.style()}
	switch len(n.Ratio) {
	case 0:
	case 2:
		img.Ratio = [2]float64{n.Ratio[0], n.Ratio[1]}
	default:
		return nil, fmt.Errorf("%s: ratio needs 2 values, got %d", path, len(n.Ratio))
	}
	return img, nil
}

func (c *converter) toolbar(n *Node, path string) (*widgets.ToolBar, error) {
	tb := &widgets.ToolBar{Style: n.Style.style()}
	if n.Title != "" {
		tb.Title = &widgets.Label{Text: n.Title, Style: n.LabelStyle.labelStyle()}
	}
	if n.TitleAlign != nil {
		tb.TitleAlign = *n.TitleAlign
	}
	if n.ActionsAlign != nil {
		tb.ActionsAlign = *n.ActionsAlign
	}
	for i, action := range n.Actions {
		w, err := c.widget(action, fmt.Sprintf("%s.actions[%d]", path, i))
		if err != nil {
			return nil, err
		}
		tb.Actions = append(tb.Actions, w)
	}
	return tb, nil
}

func (c *converter) tap(n *Node, path string) (*widgets.Controller, error) {
	if n.Name == "" {
		return nil, fmt.Errorf("%s: tap requires a name", path)
	}
	if _, dup := c.controllers[n.Name]; dup {
		return nil, fmt.Errorf("%s: duplicate tap name %q", path, n.Name)
	}
	var child widgets.Widget
	if n.Child != nil {
		w, err := c.widget(n.Child, path+".child")
		if err != nil {
			return nil, err
		}
		child = w
	}
	ctrl := widgets.NewTapDetector(n.Name, child, nil)
	c.controllers[n.Name] = ctrl
	c.names = append(c.names, n.Name)
	return ctrl, nil
}
