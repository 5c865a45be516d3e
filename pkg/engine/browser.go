// Package engine connects a widget tree to the drawables built from it.
//
// [ForEachController] walks the tree in the order the builder emitted the
// drawables and records in every controller the zone its child was drawn in.
// [View] serializes build and browse passes for a host render loop.
package engine

import (
	"fmt"

	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

// ForEachController locates the controllers of root that detect kind, or all
// of them for [widgets.AnyController], in the drawables last built from root
// with th. Each one gets its zone updated from drawables, then is passed to fn.
//
// The walk replays the builder: it visits every child of every Layout and
// follows what widgets expand into (a Container's child, the actions of a
// ToolBar, the child of a Controller), consuming one drawable per drawable
// the builder emitted. A controller's zone is the zone of the first drawable
// of its child.
//
// If drawables were not built from root as it currently is, the walk may run
// out of drawables or find one of another group; ForEachController then
// returns an error wrapping [errors.ErrStaleDrawables]. Controllers visited
// before that point have already been updated.
func ForEachController(root *widgets.Layout, drawables []rendering.Drawable, th *theme.Theme, kind widgets.ControllerKind, fn func(c *widgets.Controller)) error {
	if root == nil {
		return nil
	}
	b := &browser{drawables: drawables, th: theme.OrDefault(th), kind: kind, fn: fn}
	return b.layout(root, false)
}

type browser struct {
	drawables []rendering.Drawable
	th        *theme.Theme
	kind      widgets.ControllerKind
	fn        func(c *widgets.Controller)

	id     int
	cursor int
}

// layout consumes the drawables of l. expanded is set inside a widget
// expansion, where group ids do not advance.
func (b *browser) layout(l *widgets.Layout, expanded bool) error {
	if err := b.next(); err != nil {
		return err
	}
	for _, child := range l.Children {
		if !expanded {
			b.id++
		}
		if err := b.widget(child, expanded); err != nil {
			return err
		}
	}
	return nil
}

func (b *browser) widget(w widgets.Widget, expanded bool) error {
	switch w := w.(type) {
	case nil:
		return b.stale()
	case *widgets.Layout:
		return b.layout(w, expanded)
	case *widgets.Controller:
		if err := b.check(); err != nil {
			return err
		}
		b.visit(w)
		if w.Child == nil {
			return b.next()
		}
		return b.widget(w.Child, true)
	}

	built := w.Build(b.th)
	if l, ok := built.(*widgets.Layout); ok {
		return b.layout(l, true)
	}
	if built == nil {
		return b.stale()
	}
	return b.next()
}

// check fails unless the drawable under the cursor belongs to the current
// group.
func (b *browser) check() error {
	if b.cursor >= len(b.drawables) || b.drawables[b.cursor].GroupID != b.id {
		return b.stale()
	}
	return nil
}

// next consumes the drawable under the cursor.
func (b *browser) next() error {
	if err := b.check(); err != nil {
		return err
	}
	b.cursor++
	return nil
}

func (b *browser) stale() error {
	return &errors.Error{
		Op:   "engine.ForEachController",
		Kind: errors.KindInvariant,
		Err:  fmt.Errorf("no drawable %d for group %d: %w", b.cursor, b.id, errors.ErrStaleDrawables),
	}
}

func (b *browser) visit(c *widgets.Controller) {
	if b.kind != widgets.AnyController && c.Detects != b.kind {
		return
	}
	c.SetZone(b.drawables[b.cursor].Zone)
	if b.fn != nil {
		b.fn(c)
	}
}
