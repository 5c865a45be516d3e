// Package svg exports drawables as an SVG document.
//
// Surfaces become rectangles, labels text, images image references, and
// opaque drawables dashed placeholders. Clipped drawables reference a shared
// clipPath. Every element carries the group id of its drawable in a
// data-group attribute.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

const namespace = "http://www.w3.org/2000/svg"

type document struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Defs    *defs    `xml:"defs,omitempty"`
	Body    []any
}

type defs struct {
	ClipPaths []clipPath `xml:"clipPath"`
}

type clipPath struct {
	ID   string `xml:"id,attr"`
	Rect rect   `xml:"rect"`
}

type rect struct {
	XMLName     xml.Name `xml:"rect"`
	Group       string   `xml:"data-group,attr,omitempty"`
	Widget      string   `xml:"data-widget,attr,omitempty"`
	X           int      `xml:"x,attr"`
	Y           int      `xml:"y,attr"`
	Width       int      `xml:"width,attr"`
	Height      int      `xml:"height,attr"`
	RX          string   `xml:"rx,attr,omitempty"`
	Fill        string   `xml:"fill,attr,omitempty"`
	FillOpacity string   `xml:"fill-opacity,attr,omitempty"`
	Stroke      string   `xml:"stroke,attr,omitempty"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
	Dash        string   `xml:"stroke-dasharray,attr,omitempty"`
	ClipPath    string   `xml:"clip-path,attr,omitempty"`
}

type text struct {
	XMLName  xml.Name `xml:"text"`
	Group    string   `xml:"data-group,attr"`
	X        int      `xml:"x,attr"`
	Y        int      `xml:"y,attr"`
	Anchor   string   `xml:"text-anchor,attr"`
	Baseline string   `xml:"dominant-baseline,attr"`
	FontSize int      `xml:"font-size,attr,omitempty"`
	Fill     string   `xml:"fill,attr,omitempty"`
	ClipPath string   `xml:"clip-path,attr,omitempty"`
	Content  string   `xml:",chardata"`
}

type image struct {
	XMLName  xml.Name `xml:"image"`
	Group    string   `xml:"data-group,attr"`
	Href     string   `xml:"href,attr"`
	X        int      `xml:"x,attr"`
	Y        int      `xml:"y,attr"`
	Width    int      `xml:"width,attr"`
	Height   int      `xml:"height,attr"`
	Aspect   string   `xml:"preserveAspectRatio,attr"`
	ClipPath string   `xml:"clip-path,attr,omitempty"`
}

// Encode writes drawables as an SVG document of the given size. th resolves
// the text size of labels; nil means theme.Default.
func Encode(w io.Writer, drawables []rendering.Drawable, size graphics.Size, th *theme.Theme) error {
	th = theme.OrDefault(th)
	doc := document{
		Xmlns:   namespace,
		Width:   size.Width,
		Height:  size.Height,
		ViewBox: fmt.Sprintf("0 0 %d %d", size.Width, size.Height),
	}

	clips := make(map[graphics.Zone]string)
	for _, d := range drawables {
		clipRef := ""
		if d.Clip != nil {
			id, ok := clips[*d.Clip]
			if !ok {
				id = "clip" + strconv.Itoa(len(clips))
				clips[*d.Clip] = id
				if doc.Defs == nil {
					doc.Defs = &defs{}
				}
				doc.Defs.ClipPaths = append(doc.Defs.ClipPaths, clipPath{ID: id, Rect: zoneRect(*d.Clip)})
			}
			clipRef = "url(#" + id + ")"
		}
		doc.Body = append(doc.Body, element(d, clipRef, th))
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode svg: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}

func element(d rendering.Drawable, clipRef string, th *theme.Theme) any {
	group := strconv.Itoa(d.GroupID)
	z := d.Zone

	switch d.Object.Kind {
	case rendering.ObjectSurface:
		r := zoneRect(z)
		r.Group = group
		r.ClipPath = clipRef
		if s := d.Object.Surface; s != nil {
			style := s.StyleOf(th)
			r.Fill, r.FillOpacity = paint(style.Color)
			if b := style.Borders[graphics.SideTop]; b.Width > 0 {
				r.Stroke, _ = paint(b.Color)
				r.StrokeWidth = strconv.Itoa(b.Width)
			}
			if style.Radius > 0 {
				r.RX = strconv.FormatFloat(float64(style.Radius), 'f', -1, 64)
			}
		}
		return r

	case rendering.ObjectLabel:
		t := text{
			Group:    group,
			X:        z.X() + z.Width()/2,
			Y:        z.Y() + z.Height()/2,
			Anchor:   "middle",
			Baseline: "middle",
			ClipPath: clipRef,
		}
		if l := d.Object.Label; l != nil {
			t.Content = l.Text
			t.FontSize = l.TextStyleOf(th).Size
			t.Fill, _ = paint(l.LabelStyleOf(th).Color)
		}
		return t

	case rendering.ObjectImage:
		img := image{
			Group:    group,
			X:        z.X(),
			Y:        z.Y(),
			Width:    z.Width(),
			Height:   z.Height(),
			Aspect:   "xMidYMid meet",
			ClipPath: clipRef,
		}
		if i := d.Object.Image; i != nil {
			img.Href = i.Source
		}
		return img

	default:
		r := zoneRect(z)
		r.Group = group
		r.Widget = widgets.Describe(d.Object.Opaque)
		r.Fill = "none"
		r.Stroke = "#ff00ff"
		r.Dash = "4 2"
		r.ClipPath = clipRef
		return r
	}
}

func zoneRect(z graphics.Zone) rect {
	return rect{X: z.X(), Y: z.Y(), Width: z.Width(), Height: z.Height()}
}

// paint splits c into an SVG colour and an opacity, the latter empty when c is
// opaque.
func paint(c graphics.Color) (string, string) {
	_, _, _, a := c.RGBA()
	rgb := c.WithAlpha8(0xFF).Hex()
	if a == 0xFF {
		return rgb, ""
	}
	return rgb, strconv.FormatFloat(float64(a)/255, 'f', 3, 64)
}
