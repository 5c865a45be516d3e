package widgets_test

import (
	"testing"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

func TestLayout_BuildUsesThemeFallback(t *testing.T) {
	th := theme.DefaultLightTheme()
	built := widgets.RowOf().Build(th)

	surface, ok := built.(*widgets.Surface)
	if !ok {
		t.Fatalf("expected *Surface, got %T", built)
	}
	if surface.Style == nil || surface.Style.Color != th.Style.Color {
		t.Errorf("expected theme fallback colour %s, got %+v", th.Style.Color, surface.Style)
	}
}

func TestLayout_BuildUsesOwnStyle(t *testing.T) {
	own := theme.Style{Color: graphics.ColorRed}
	built := widgets.ColumnOf().WithStyle(own).Build(theme.DefaultDarkTheme())

	surface := built.(*widgets.Surface)
	if surface.Style.Color != graphics.ColorRed {
		t.Errorf("expected own colour, got %s", surface.Style.Color)
	}
}

func TestLayout_Builders(t *testing.T) {
	l := widgets.ColumnOf(&widgets.Surface{}).
		WithAlign(widgets.AlignRight, widgets.AlignBottom).
		WithOverflow(widgets.OverflowHide)

	if l.Direction != widgets.Column {
		t.Errorf("Direction = %s, want column", l.Direction)
	}
	if l.XAlign != widgets.AlignRight || l.YAlign != widgets.AlignBottom {
		t.Errorf("aligns = %s/%s, want right/bottom", l.XAlign, l.YAlign)
	}
	if l.Overflow != widgets.OverflowHide {
		t.Errorf("Overflow = %s, want hide", l.Overflow)
	}
	if len(l.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(l.Children))
	}
}

func TestContainer_BuildWithoutChild(t *testing.T) {
	c := &widgets.Container{Size: graphics.Size{Width: 10, Height: 10}}
	if _, ok := c.Build(nil).(*widgets.Surface); !ok {
		t.Fatalf("expected childless container to build into a surface")
	}
}

func TestContainer_BuildExpandsIntoLayout(t *testing.T) {
	label := &widgets.Label{Text: "Fixed"}
	style := theme.Style{Color: graphics.ColorBlue}
	c := &widgets.Container{Size: graphics.Size{Width: 100, Height: 50}, Child: label, Style: &style}

	built, ok := c.Build(nil).(*widgets.Layout)
	if !ok {
		t.Fatalf("expected *Layout, got %T", c.Build(nil))
	}
	if len(built.Children) != 1 || built.Children[0] != label {
		t.Fatalf("expected the container child to be the only layout child")
	}
	if built.Style == nil || built.Style.Color != graphics.ColorBlue {
		t.Errorf("expected the layout surface to carry the container style")
	}
	if built.XAlign != widgets.AlignCenter || built.YAlign != widgets.AlignCenter {
		t.Errorf("expected centered expansion, got %s/%s", built.XAlign, built.YAlign)
	}
}

func TestLabel_BuildResolvesStyle(t *testing.T) {
	th := theme.DefaultLightTheme()
	l := &widgets.Label{Text: "hello"}

	built := l.Build(th).(*widgets.Label)
	if built == l {
		t.Fatal("expected Build to return a copy")
	}
	if built.Text != "hello" {
		t.Errorf("Text = %q", built.Text)
	}
	if built.Style == nil || built.Style.Color != th.Label.Color {
		t.Errorf("expected theme label colour, got %+v", built.Style)
	}
	if l.Style != nil {
		t.Error("Build must not mutate the original label")
	}
}

func TestLabel_TextStyleOf(t *testing.T) {
	th := theme.DefaultLightTheme()

	heading := &widgets.Label{Style: &theme.LabelStyle{Text: "heading1"}}
	if got := heading.TextStyleOf(th); got != th.Text.Heading1 {
		t.Errorf("heading1 = %+v, want %+v", got, th.Text.Heading1)
	}

	unknown := &widgets.Label{Style: &theme.LabelStyle{Text: "nope"}}
	if got := unknown.TextStyleOf(th); got != th.Text.Paragraph1 {
		t.Errorf("unknown name should fall back to paragraph1, got %+v", got)
	}
}

func TestButtons_Build(t *testing.T) {
	style := theme.Style{Color: graphics.ColorGreen}
	label := &widgets.Label{Text: "OK"}
	image := &widgets.Image{Source: "ok.png"}

	tests := []struct {
		name    string
		widget  widgets.Widget
		content widgets.Widget
	}{
		{"button", &widgets.Button{Style: &style}, nil},
		{"text button", &widgets.TextButton{Label: label, Style: &style}, label},
		{"image button", &widgets.ImageButton{Image: image, Style: &style}, image},
		{"empty text button", &widgets.TextButton{Style: &style}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.widget.Kind() != widgets.KindComposite {
				t.Errorf("Kind = %s, want composite", tt.widget.Kind())
			}
			built := tt.widget.Build(nil)
			if tt.content == nil {
				s, ok := built.(*widgets.Surface)
				if !ok {
					t.Fatalf("expected *Surface, got %T", built)
				}
				if s.Style.Color != graphics.ColorGreen {
					t.Errorf("expected button colour, got %s", s.Style.Color)
				}
				return
			}
			l, ok := built.(*widgets.Layout)
			if !ok {
				t.Fatalf("expected *Layout, got %T", built)
			}
			if l.Overflow != widgets.OverflowHide {
				t.Errorf("expected content to be clipped to the button")
			}
			if len(l.Children) != 1 || l.Children[0] != tt.content {
				t.Errorf("expected content as only child")
			}
		})
	}
}

func TestToolBar_Build(t *testing.T) {
	title := &widgets.Label{Text: "Title"}
	action := &widgets.Button{}
	bar := &widgets.ToolBar{
		Title:        title,
		TitleAlign:   widgets.AlignLeft,
		Actions:      []widgets.Widget{action},
		ActionsAlign: widgets.AlignRight,
	}

	built, ok := bar.Build(nil).(*widgets.Layout)
	if !ok {
		t.Fatalf("expected *Layout, got %T", bar.Build(nil))
	}
	if len(built.Children) != 2 {
		t.Fatalf("expected title and actions sections, got %d children", len(built.Children))
	}
	titleSection := built.Children[0].(*widgets.Layout)
	if titleSection.XAlign != widgets.AlignLeft || titleSection.Children[0] != title {
		t.Errorf("unexpected title section %+v", titleSection)
	}
	actions := built.Children[1].(*widgets.Layout)
	if actions.XAlign != widgets.AlignRight || actions.Children[0] != action {
		t.Errorf("unexpected actions section %+v", actions)
	}
}

func TestToolBar_BuildWithoutActions(t *testing.T) {
	bar := &widgets.ToolBar{Title: &widgets.Label{Text: "Only"}}
	built := bar.Build(nil).(*widgets.Layout)
	if len(built.Children) != 1 {
		t.Errorf("expected a single section, got %d", len(built.Children))
	}
}

func TestCustom_Build(t *testing.T) {
	opaque := &widgets.Custom{Name: "chart"}
	if got := opaque.Build(nil); got != opaque {
		t.Errorf("custom widget without composer should build into itself, got %T", got)
	}

	declined := &widgets.Custom{Composer: widgets.ComposerFunc(func(*theme.Theme) widgets.Widget {
		return nil
	})}
	if got := declined.Build(nil); got != declined {
		t.Errorf("composer returning nil should leave the widget opaque, got %T", got)
	}

	surface := &widgets.Surface{}
	composed := &widgets.Custom{Composer: widgets.ComposerFunc(func(*theme.Theme) widgets.Widget {
		return surface
	})}
	if got := composed.Build(nil); got != surface {
		t.Errorf("expected composed widget, got %T", got)
	}
}

func TestController_Build(t *testing.T) {
	layout := widgets.RowOf()
	c := widgets.NewTapDetector("row", layout, nil)
	if got := c.Build(nil); got != layout {
		t.Errorf("controller should return a layout child as is, got %T", got)
	}

	button := widgets.NewTapDetector("ok", &widgets.Button{}, nil)
	if _, ok := button.Build(nil).(*widgets.Surface); !ok {
		t.Errorf("controller should build into what its child builds into")
	}

	empty := &widgets.Controller{Detects: widgets.TapDetector}
	if _, ok := empty.Build(nil).(*widgets.Surface); !ok {
		t.Errorf("childless controller should build into a surface")
	}
}

func TestController_ZoneAndFire(t *testing.T) {
	var fired []widgets.Event
	c := widgets.NewTapDetector("tap", &widgets.Button{}, widgets.HandlerFunc(func(_ *widgets.Controller, ev widgets.Event) {
		fired = append(fired, ev)
	}))

	if _, ok := c.Zone(); ok {
		t.Fatal("zone should be unset before browsing")
	}
	if c.Contains(graphics.Point{}) {
		t.Fatal("unlocated controller must not contain any point")
	}

	c.SetZone(graphics.ZoneFromXYWH(10, 10, 20, 20))
	if !c.Contains(graphics.Point{X: 30, Y: 30}) {
		t.Error("expected bottom-right corner to be inside")
	}
	if c.Contains(graphics.Point{X: 31, Y: 30}) {
		t.Error("expected point past the right edge to be outside")
	}

	c.Fire(widgets.Event{Kind: widgets.EventTap, Point: graphics.Point{X: 15, Y: 15}})
	if len(fired) != 1 {
		t.Fatalf("expected one event, got %d", len(fired))
	}

	silent := &widgets.Controller{Detects: widgets.TapDetector}
	silent.Fire(widgets.Event{})
}

func TestAlign_Axes(t *testing.T) {
	for _, a := range widgets.HorizontalAligns {
		if !a.IsHorizontal() {
			t.Errorf("%s should be horizontal", a)
		}
	}
	for _, a := range widgets.VerticalAligns {
		if !a.IsVertical() {
			t.Errorf("%s should be vertical", a)
		}
	}
	if widgets.AlignTop.IsHorizontal() || widgets.AlignLeft.IsVertical() {
		t.Error("top/left must be rejected on the other axis")
	}
}

func TestEnums_UnmarshalText(t *testing.T) {
	var a widgets.Align
	if err := a.UnmarshalText([]byte("bottom")); err != nil || a != widgets.AlignBottom {
		t.Errorf("align = %s, err = %v", a, err)
	}
	if err := a.UnmarshalText([]byte("middle")); err == nil {
		t.Error("expected error for unknown alignment")
	}

	var d widgets.Direction
	if err := d.UnmarshalText([]byte("column")); err != nil || d != widgets.Column {
		t.Errorf("direction = %s, err = %v", d, err)
	}

	var o widgets.Overflow
	if err := o.UnmarshalText(nil); err != nil || o != widgets.OverflowIgnore {
		t.Errorf("empty overflow should decode to ignore, got %s, %v", o, err)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		widget widgets.Widget
		want   string
	}{
		{nil, "<nil>"},
		{widgets.RowOf(&widgets.Surface{}), "layout(row, 1 children)"},
		{&widgets.Label{Text: "hi"}, `label("hi")`},
		{widgets.NewTapDetector("ok", nil, nil), `controller(tap "ok")`},
		{&widgets.Custom{Name: "chart"}, `custom("chart")`},
		{&widgets.Surface{}, "surface"},
		{&widgets.Button{}, "composite"},
	}
	for _, tt := range tests {
		if got := widgets.Describe(tt.widget); got != tt.want {
			t.Errorf("Describe(%T) = %q, want %q", tt.widget, got, tt.want)
		}
	}
}
