// Package widgets provides the node types of a framekit widget tree.
//
// A tree is made of a closed set of variants:
//
//   - [Layout] arranges an ordered list of children in a row or a column.
//   - [Container] wraps one child and gives it a fixed, authoritative size.
//   - [Surface], [Label] and [Image] are leaf primitives.
//   - [Controller] wraps one child and reacts to events inside its zone.
//   - Composites ([Button], [TextButton], [ImageButton], [ToolBar] and
//     host-defined [Custom] widgets) expand into simpler widgets when built.
//
// The set is sealed: every variant implements an unexported method, so code
// that matches on widget types can list every case.
//
// # Building
//
// Every widget exposes a single expansion step:
//
//	built := w.Build(th)
//
// Leaf variants return a copy of themselves with their style resolved against
// the theme. Composite variants return a Layout or Surface that substitutes
// for them. The rendering package repeatedly applies Build while it walks the
// tree and turns the results into positioned drawables.
//
// # Construction
//
// Widgets are plain structs; use struct literals for full control:
//
//	root := &widgets.Layout{
//	    Direction: widgets.Row,
//	    XAlign:    widgets.AlignCenter,
//	    YAlign:    widgets.AlignCenter,
//	    Children: []widgets.Widget{
//	        &widgets.Container{Size: graphics.Size{Width: 100, Height: 50}, Child: &widgets.Surface{}},
//	        widgets.NewTapDetector("ok", &widgets.TextButton{Label: &widgets.Label{Text: "OK"}}, handler),
//	    },
//	}
//
// RowOf and ColumnOf are shorthands for centered layouts.
//
// # Themes
//
// Styles are optional. A widget with a nil style uses the fallback carried by
// the *theme.Theme passed to Build; there is no global theme.
package widgets
