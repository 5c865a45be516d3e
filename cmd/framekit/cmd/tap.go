package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/framekit/pkg/engine"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tap",
		Short: "Report which tap detectors a tap fires",
		Long: `Build a document, deliver a tap at X Y and report the named tap
detectors whose zone contains the point, along with the topmost drawable
under it.

Flags:
  --size WxH     Zone size
  --theme FILE   Theme file (TOML)
  --verbose      Print stack traces for build errors`,
		Usage: "framekit tap <document> X Y [--size WxH] [--theme FILE]",
		Run:   runTap,
	})
}

func runTap(args []string) error {
	opts, positional, err := parseSceneFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 3 {
		return fmt.Errorf("a document and a point are required\n\nUsage: framekit tap <document> X Y")
	}
	opts.document = positional[0]
	p, err := parsePoint(positional[1], positional[2])
	if err != nil {
		return err
	}

	s, err := loadScene(opts)
	if err != nil {
		return err
	}

	var fired []string
	s.doc.BindAll(widgets.HandlerFunc(func(c *widgets.Controller, _ widgets.Event) {
		fired = append(fired, c.Name)
	}))

	view := engine.NewView(s.zone, s.doc.Root, s.theme)
	if _, err := view.Tap(p); err != nil {
		return err
	}
	drawables, err := view.Drawables()
	if err != nil {
		return err
	}

	if i, ok := engine.HitTest(drawables, p); ok {
		fmt.Fprintf(stdout, "hit: %s\n", drawables[i])
	} else {
		fmt.Fprintf(stdout, "hit: nothing at %s\n", p)
	}
	if len(fired) == 0 {
		fmt.Fprintln(stdout, "fired: none")
		return nil
	}
	for _, name := range fired {
		fmt.Fprintf(stdout, "fired: %s\n", name)
	}
	return nil
}

func parsePoint(xs, ys string) (graphics.Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return graphics.Point{}, fmt.Errorf("invalid x %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return graphics.Point{}, fmt.Errorf("invalid y %q", ys)
	}
	return graphics.Point{X: x, Y: y}, nil
}
