package svg

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

type parsedRect struct {
	Group       string `xml:"data-group,attr"`
	Widget      string `xml:"data-widget,attr"`
	X           int    `xml:"x,attr"`
	Y           int    `xml:"y,attr"`
	Width       int    `xml:"width,attr"`
	Height      int    `xml:"height,attr"`
	RX          string `xml:"rx,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
	ClipPath    string `xml:"clip-path,attr"`
}

type parsed struct {
	Width   int    `xml:"width,attr"`
	Height  int    `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
	Defs    struct {
		ClipPaths []struct {
			ID   string     `xml:"id,attr"`
			Rect parsedRect `xml:"rect"`
		} `xml:"clipPath"`
	} `xml:"defs"`
	Rects []parsedRect `xml:"rect"`
	Texts []struct {
		Group    string `xml:"data-group,attr"`
		X        int    `xml:"x,attr"`
		Y        int    `xml:"y,attr"`
		FontSize int    `xml:"font-size,attr"`
		Fill     string `xml:"fill,attr"`
		ClipPath string `xml:"clip-path,attr"`
		Content  string `xml:",chardata"`
	} `xml:"text"`
	Images []struct {
		Href     string `xml:"href,attr"`
		Width    int    `xml:"width,attr"`
		ClipPath string `xml:"clip-path,attr"`
	} `xml:"image"`
}

func encode(t *testing.T, drawables []rendering.Drawable, size graphics.Size) parsed {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, drawables, size, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Errorf("document does not start with the XML header")
	}
	var doc parsed
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v\n%s", err, buf.String())
	}
	return doc
}

func TestEncode_Elements(t *testing.T) {
	clip := graphics.ZoneFromXYWH(0, 0, 80, 100)
	surface := &widgets.Surface{Style: &theme.Style{
		Color:   graphics.RGBA8(0xFF, 0, 0, 0x80),
		Borders: graphics.UniformBorders(graphics.Border{Width: 2, Color: graphics.ColorBlack}),
		Radius:  4,
	}}
	drawables := []rendering.Drawable{
		{Object: rendering.Classify(surface), GroupID: 0, Zone: graphics.ZoneFromXYWH(0, 0, 100, 50)},
		{Object: rendering.Classify(&widgets.Label{Text: "a < b"}), GroupID: 1, Zone: graphics.ZoneFromXYWH(0, 50, 100, 20), Clip: &clip},
		{Object: rendering.Classify(&widgets.Image{Source: "icons/x.png"}), GroupID: 2, Zone: graphics.ZoneFromXYWH(10, 10, 20, 20), Clip: &clip},
		{Object: rendering.Classify(&widgets.Custom{Name: "chart"}), GroupID: 3, Zone: graphics.ZoneFromXYWH(0, 70, 100, 30)},
	}

	doc := encode(t, drawables, graphics.Size{Width: 100, Height: 100})

	if doc.Width != 100 || doc.Height != 100 || doc.ViewBox != "0 0 100 100" {
		t.Errorf("svg size = %dx%d viewBox %q", doc.Width, doc.Height, doc.ViewBox)
	}
	if len(doc.Defs.ClipPaths) != 1 {
		t.Fatalf("got %d clip paths, want one shared path", len(doc.Defs.ClipPaths))
	}
	if cp := doc.Defs.ClipPaths[0]; cp.ID != "clip0" || cp.Rect.Width != 80 || cp.Rect.Height != 100 {
		t.Errorf("clip path = %+v", cp)
	}

	if len(doc.Rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(doc.Rects))
	}
	r := doc.Rects[0]
	if r.Group != "0" || r.Fill != "#ff0000" || r.FillOpacity != "0.502" ||
		r.Stroke != "#000000" || r.StrokeWidth != "2" || r.RX != "4" || r.ClipPath != "" {
		t.Errorf("surface rect = %+v", r)
	}
	if o := doc.Rects[1]; o.Widget != `custom("chart")` || o.Fill != "none" || o.Y != 70 {
		t.Errorf("opaque rect = %+v", o)
	}

	if len(doc.Texts) != 1 {
		t.Fatalf("got %d texts", len(doc.Texts))
	}
	if txt := doc.Texts[0]; txt.Content != "a < b" || txt.X != 50 || txt.Y != 60 ||
		txt.FontSize != 16 || txt.Fill != "#000000" || txt.ClipPath != "url(#clip0)" {
		t.Errorf("text = %+v", txt)
	}

	if len(doc.Images) != 1 {
		t.Fatalf("got %d images", len(doc.Images))
	}
	if img := doc.Images[0]; img.Href != "icons/x.png" || img.Width != 20 || img.ClipPath != "url(#clip0)" {
		t.Errorf("image = %+v", img)
	}
}

func TestEncode_BuiltTree(t *testing.T) {
	root := &widgets.Layout{
		Overflow: widgets.OverflowHide,
		Children: []widgets.Widget{
			&widgets.Container{Size: graphics.Size{Width: 400, Height: 50}, Child: &widgets.Label{Text: "wide"}},
		},
	}
	drawables, err := rendering.Build(graphics.ZoneFromXYWH(0, 0, 200, 100), root, nil)
	if err != nil {
		t.Fatal(err)
	}

	doc := encode(t, drawables, graphics.Size{Width: 200, Height: 100})

	if len(doc.Rects) != 2 {
		t.Fatalf("got %d rects, want layout and container surfaces", len(doc.Rects))
	}
	if r := doc.Rects[0]; r.Fill != "#b4b4b4" || r.Width != 200 || r.ClipPath != "" {
		t.Errorf("layout surface = %+v", r)
	}
	if r := doc.Rects[1]; r.Width != 400 || r.Y != 25 || r.Group != "1" || r.ClipPath != "url(#clip0)" {
		t.Errorf("container surface = %+v", r)
	}
	if len(doc.Texts) != 1 || doc.Texts[0].ClipPath == "" {
		t.Errorf("overflowing label should be clipped: %+v", doc.Texts)
	}
}

func TestEncode_Empty(t *testing.T) {
	doc := encode(t, nil, graphics.Size{})
	if len(doc.Defs.ClipPaths) != 0 || len(doc.Rects) != 0 {
		t.Errorf("empty document has content: %+v", doc)
	}
}
