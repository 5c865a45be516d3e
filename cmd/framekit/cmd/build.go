package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"

	"github.com/go-drift/framekit/pkg/engine"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/svg"
	"github.com/go-drift/framekit/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "build",
		Short: "Build a document into drawables",
		Long: `Lay out a widget document and print the drawables it builds into.

Formats:
  table   One row per drawable with its group, kind, zone and clip, then
          the build time (default)
  json    The frame snapshot handed to out-of-process hosts
  svg     An SVG preview of the drawables
  dump    A deep dump of the drawable values, for debugging

Flags:
  --size WxH       Zone size (default: the document's zone, framekit.yaml,
                   then the terminal size)
  --theme FILE     Theme file (TOML), overriding the document's theme
  --format FORMAT  Output format: table, json, svg or dump
  -o, --out FILE   Write the output to FILE instead of stdout
  --verbose        Print stack traces for build errors`,
		Usage: "framekit build <document> [--size WxH] [--theme FILE] [--format FORMAT] [-o FILE]",
		Run:   runBuild,
	})
}

func runBuild(args []string) error {
	opts, positional, err := parseSceneFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("a document is required\n\nUsage: framekit build <document>")
	}
	opts.document = positional[0]

	s, err := loadScene(opts)
	if err != nil {
		return err
	}

	view := engine.NewView(s.zone, s.doc.Root, s.theme)
	drawables, err := view.Build()
	if err != nil {
		return err
	}

	return withOutput(opts.out, func(w io.Writer) error {
		return writeDrawables(w, s, view, drawables, view.Timings().Stats())
	})
}

// withOutput calls fn with stdout, or with the file at path if set.
func withOutput(path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dumpConfig dumps the drawable values themselves rather than their String
// form.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// writeDrawables writes drawables in the scene's format. The table format is
// followed by stats, the build timings of the scene.
func writeDrawables(w io.Writer, s *scene, view *engine.View, drawables []rendering.Drawable, stats engine.BuildStats) error {
	switch s.format {
	case "json":
		snap, err := view.Snapshot()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "svg":
		return svg.Encode(w, drawables, s.zone.Size, s.theme)
	case "dump":
		dumpConfig.Fdump(w, drawables)
		return nil
	default:
		if _, err := fmt.Fprintln(w, drawableTable(drawables)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d drawables, %s", len(drawables), stats)))
		return err
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("8"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// drawableTable renders drawables as a bordered table. Colours get a swatch
// painted with the colour itself.
func drawableTable(drawables []rendering.Drawable) string {
	rows := make([][]string, 0, len(drawables))
	for _, d := range drawables {
		clip := ""
		if d.Clip != nil {
			clip = d.Clip.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(d.GroupID),
			d.Object.Kind.String(),
			d.Zone.String(),
			clip,
			swatch(d),
			content(d),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("GROUP", "KIND", "ZONE", "CLIP", "COLOR", "CONTENT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3:
				return dimStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

func paintColor(d rendering.Drawable) (graphics.Color, bool) {
	switch d.Object.Kind {
	case rendering.ObjectSurface:
		if s := d.Object.Surface; s != nil && s.Style != nil {
			return s.Style.Color, true
		}
	case rendering.ObjectLabel:
		if l := d.Object.Label; l != nil && l.Style != nil {
			return l.Style.Color, true
		}
	}
	return 0, false
}

func swatch(d rendering.Drawable) string {
	c, ok := paintColor(d)
	if !ok {
		return ""
	}
	hex := c.WithAlpha8(0xFF).Hex()
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + c.Hex()
}

func content(d rendering.Drawable) string {
	switch d.Object.Kind {
	case rendering.ObjectLabel:
		if d.Object.Label != nil {
			return strconv.Quote(d.Object.Label.Text)
		}
	case rendering.ObjectImage:
		if d.Object.Image != nil {
			return d.Object.Image.Source
		}
	case rendering.ObjectOpaque:
		return widgets.Describe(d.Object.Opaque)
	}
	return ""
}
