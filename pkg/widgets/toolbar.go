package widgets

import "github.com/go-drift/framekit/pkg/theme"

// ToolBar is a bar commonly displayed at the top of an application, with an
// optional title and a group of actions.
//
// TitleAlign and ActionsAlign must be AlignLeft, AlignCenter or AlignRight;
// any other value is reported as an x-axis configuration error when the tool
// bar is laid out.
type ToolBar struct {
	Title        *Label
	TitleAlign   Align
	Actions      []Widget
	ActionsAlign Align
	// Style is the bar's own style; nil uses the theme fallback.
	Style *theme.Style
}

// Build expands the tool bar into a row holding a title section and an
// actions section, each aligned on its own.
func (t *ToolBar) Build(th *theme.Theme) Widget {
	style := t.StyleOf(th)
	bar := &Layout{
		Direction: Row,
		XAlign:    AlignCenter,
		YAlign:    AlignCenter,
		Overflow:  OverflowHide,
		Style:     &style,
	}
	if t.Title != nil {
		bar.Children = append(bar.Children, &Layout{
			Direction: Row,
			XAlign:    t.TitleAlign,
			YAlign:    AlignCenter,
			Overflow:  OverflowHide,
			Style:     &style,
			Children:  []Widget{t.Title},
		})
	}
	if len(t.Actions) > 0 {
		bar.Children = append(bar.Children, &Layout{
			Direction: Row,
			XAlign:    t.ActionsAlign,
			YAlign:    AlignCenter,
			Overflow:  OverflowHide,
			Style:     &style,
			Children:  t.Actions,
		})
	}
	return bar
}

// StyleOf returns the bar style.
func (t *ToolBar) StyleOf(th *theme.Theme) theme.Style {
	return resolveStyle(t.Style, th)
}

// Kind returns KindComposite.
func (t *ToolBar) Kind() Kind { return KindComposite }

func (t *ToolBar) sealed() {}
