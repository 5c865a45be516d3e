package rendering

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/layout"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

// Build lays root out in zone and returns its drawables.
//
// The root layout's own surface gets group id 0. Each child slot of each
// layout reached without expansion then takes the next id. Everything a
// widget expands into (a Container's surface and child, a button's label)
// shares the id of that widget's slot.
//
// th is passed to every Build call; nil means [theme.Default]. Build never
// returns a partial list. A misconfigured layout aborts it with a KindConfig
// error, and a contract breach between sizer and aligner with a KindInvariant
// error; both are also reported through [errors.Report].
func Build(zone graphics.Zone, root *widgets.Layout, th *theme.Theme) (drawables []Drawable, err error) {
	if root == nil {
		e := &errors.Error{
			Op:   "rendering.Build",
			Kind: errors.KindConfig,
			Err:  stderrors.New("nil root layout"),
		}
		errors.Report(e)
		return nil, e
	}

	b := &builder{th: theme.OrDefault(th)}
	defer errors.Recover("rendering.Build", &err)

	if lerr := b.layout(root, zone, false, nil); lerr != nil {
		var e *errors.Error
		if !stderrors.As(lerr, &e) {
			e = &errors.Error{Op: "rendering.Build", Kind: errors.KindUnknown, Err: lerr}
		}
		errors.Report(e)
		return nil, lerr
	}
	return b.out, nil
}

// Swapped by tests to break the sizer/aligner contract.
var (
	sizeIn  = layout.SizeIn
	alignAt = layout.AlignAt
)

type builder struct {
	th  *theme.Theme
	id  int
	out []Drawable
}

// layout emits the drawables of l and its children. expanded is set inside a
// widget expansion, where ids are not incremented.
func (b *builder) layout(l *widgets.Layout, zone graphics.Zone, expanded bool, clip *graphics.Zone) error {
	b.emit(l.Build(b.th), zone, clip)

	sizes := sizeIn(l, zone.Size)
	positions, err := alignAt(l, zone.Position, sizes)
	if err != nil {
		return err
	}
	if len(sizes) != len(positions) || len(sizes) != len(l.Children)+1 {
		panic(&errors.Error{
			Op:     "rendering.Build",
			Kind:   errors.KindInvariant,
			Widget: widgets.Describe(l),
			Err:    fmt.Errorf("%d sizes and %d positions for %d children", len(sizes), len(positions), len(l.Children)),
		})
	}

	if l.Overflow == widgets.OverflowHide {
		visible := zone
		if clip != nil {
			visible = clip.Intersect(zone)
		}
		clip = &visible
	}

	for i, child := range l.Children {
		if !expanded {
			b.id++
		}
		childZone := graphics.Zone{Position: positions[i+1], Size: sizes[i+1]}
		if err := b.widget(child, childZone, expanded, clip); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) widget(w widgets.Widget, zone graphics.Zone, expanded bool, clip *graphics.Zone) error {
	if w == nil {
		return &errors.Error{
			Op:   "rendering.Build",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("nil child widget in group %d", b.id),
		}
	}
	if l, ok := w.(*widgets.Layout); ok {
		return b.layout(l, zone, expanded, clip)
	}

	built := w.Build(b.th)
	if built == nil {
		return &errors.Error{
			Op:     "rendering.Build",
			Kind:   errors.KindConfig,
			Widget: widgets.Describe(w),
			Err:    stderrors.New("Build returned nil"),
		}
	}
	if l, ok := built.(*widgets.Layout); ok {
		return b.layout(l, zone, true, clip)
	}
	b.emit(built, zone, clip)
	return nil
}

func (b *builder) emit(w widgets.Widget, zone graphics.Zone, clip *graphics.Zone) {
	d := Drawable{
		Object:  Classify(w),
		GroupID: b.id,
		Zone:    zone,
	}
	if clip != nil {
		c := *clip
		d.Clip = &c
	}
	b.out = append(b.out, d)
}
