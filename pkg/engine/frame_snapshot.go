package engine

import (
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/widgets"
)

// FrameSnapshot is the JSON form of one build, handed to hosts that paint
// out of process.
type FrameSnapshot struct {
	FrameID   uint64             `json:"frameId"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Drawables []DrawableSnapshot `json:"drawables"`
}

// DrawableSnapshot holds the resolved geometry and paint of one drawable.
type DrawableSnapshot struct {
	Group      int    `json:"group"`
	Kind       string `json:"kind"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Color      string `json:"color,omitempty"`
	Text       string `json:"text,omitempty"`
	Source     string `json:"source,omitempty"`
	Widget     string `json:"widget,omitempty"`
	ClipLeft   int    `json:"clipLeft,omitempty"`
	ClipTop    int    `json:"clipTop,omitempty"`
	ClipRight  int    `json:"clipRight,omitempty"`
	ClipBottom int    `json:"clipBottom,omitempty"`
	HasClip    bool   `json:"hasClip,omitempty"`
	Visible    bool   `json:"visible"`
}

// NewFrameSnapshot converts drawables built in zone into a FrameSnapshot.
func NewFrameSnapshot(frameID uint64, zone graphics.Zone, drawables []rendering.Drawable) FrameSnapshot {
	fs := FrameSnapshot{
		FrameID:   frameID,
		Width:     zone.Width(),
		Height:    zone.Height(),
		Drawables: make([]DrawableSnapshot, 0, len(drawables)),
	}
	for _, d := range drawables {
		fs.Drawables = append(fs.Drawables, SnapshotDrawable(d))
	}
	return fs
}

// SnapshotDrawable converts one drawable. A drawable is hidden when its clip
// leaves nothing of its zone.
func SnapshotDrawable(d rendering.Drawable) DrawableSnapshot {
	ds := DrawableSnapshot{
		Group:  d.GroupID,
		Kind:   d.Object.Kind.String(),
		X:      d.Zone.X(),
		Y:      d.Zone.Y(),
		Width:  d.Zone.Width(),
		Height: d.Zone.Height(),
	}

	switch d.Object.Kind {
	case rendering.ObjectSurface:
		if s := d.Object.Surface; s != nil && s.Style != nil {
			ds.Color = s.Style.Color.Hex()
		}
	case rendering.ObjectLabel:
		if l := d.Object.Label; l != nil {
			ds.Text = l.Text
			if l.Style != nil {
				ds.Color = l.Style.Color.Hex()
			}
		}
	case rendering.ObjectImage:
		if i := d.Object.Image; i != nil {
			ds.Source = i.Source
		}
	default:
		ds.Widget = widgets.Describe(d.Object.Opaque)
	}

	if d.Clip != nil {
		ds.HasClip = true
		ds.ClipLeft = d.Clip.X()
		ds.ClipTop = d.Clip.Y()
		ds.ClipRight = d.Clip.Right()
		ds.ClipBottom = d.Clip.Bottom()
		ds.Visible = !d.Visible().Size.IsEmpty()
	} else {
		ds.Visible = true
	}
	return ds
}
