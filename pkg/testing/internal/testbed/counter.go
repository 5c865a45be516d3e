// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/framekit/pkg/widgets"
)

// Counter is a column holding a label with the count and an "increment" tap
// detector around a "+" button.
type Counter struct {
	Initial int
	OnTap   func(count int)
}

// Root builds the tree. Each tap on the button increments the count and
// rewrites the label in place.
func (c Counter) Root() *widgets.Layout {
	count := c.Initial
	label := &widgets.Label{Text: strconv.Itoa(count)}
	increment := widgets.NewTapDetector("increment",
		&widgets.TextButton{Label: &widgets.Label{Text: "+"}},
		widgets.HandlerFunc(func(*widgets.Controller, widgets.Event) {
			count++
			label.Text = strconv.Itoa(count)
			if c.OnTap != nil {
				c.OnTap(count)
			}
		}))
	return &widgets.Layout{
		Direction: widgets.Column,
		Children:  []widgets.Widget{label, increment},
	}
}
