// Package document loads widget trees from YAML or TOML files.
//
// A document declares the schema version it was written for, the zone the
// tree is laid out in, and the root layout:
//
//	version: 1.0.0
//	zone: {width: 320, height: 240}
//	theme: theme.toml
//	root:
//	  type: column
//	  children:
//	    - type: toolbar
//	      title: Inbox
//	    - type: tap
//	      name: refresh
//	      child: {type: text_button, text: Refresh}
//
// Colours are written as hex strings or SVG colour names.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/widgets"
)

// Format identifies a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format matching the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
	}
}

// file is the on-disk shape of a document.
type file struct {
	Version string    `yaml:"version" toml:"version"`
	Zone    *ZoneSpec `yaml:"zone,omitempty" toml:"zone,omitempty"`
	Theme   string    `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Root    *Node     `yaml:"root" toml:"root"`
}

// ZoneSpec is the serialized form of a graphics.Zone.
type ZoneSpec struct {
	X      int `yaml:"x,omitempty" toml:"x,omitempty"`
	Y      int `yaml:"y,omitempty" toml:"y,omitempty"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Document is a loaded widget tree.
type Document struct {
	// Version is the canonical schema version, e.g. "v1.0.0".
	Version string
	// Zone is the zone declared by the document. HasZone is false if it
	// declared none and the caller must pick one.
	Zone    graphics.Zone
	HasZone bool
	// Theme is the path of the theme file, relative to the document, if any.
	Theme string
	Root  *widgets.Layout

	controllers map[string]*widgets.Controller
	names       []string
}

// Load reads the document at path, choosing the decoder by extension.
// A relative Theme path is resolved against the document's directory.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, documentError("document.Load", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, documentError("document.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}
	if doc.Theme != "" && !filepath.IsAbs(doc.Theme) {
		doc.Theme = filepath.Join(filepath.Dir(path), doc.Theme)
	}
	return doc, nil
}

// Decode reads a document from r. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*Document, error) {
	var f file
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, documentError("document.Decode", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, documentError("document.Decode", err)
		}
	default:
		return nil, documentError("document.Decode", fmt.Errorf("unknown format %s", format))
	}
	return f.document()
}

func (f *file) document() (*Document, error) {
	version, err := checkVersion(f.Version)
	if err != nil {
		return nil, documentError("document.Decode", err)
	}
	if f.Root == nil {
		return nil, documentError("document.Decode", fmt.Errorf("root: missing"))
	}
	switch f.Root.Type {
	case "row", "column", "layout":
	default:
		return nil, documentError("document.Decode", fmt.Errorf("root: must be a layout, got %q", f.Root.Type))
	}

	c := &converter{controllers: make(map[string]*widgets.Controller)}
	root, err := c.layout(f.Root, "root")
	if err != nil {
		return nil, documentError("document.Decode", err)
	}

	doc := &Document{
		Version:     version,
		Theme:       f.Theme,
		Root:        root,
		controllers: c.controllers,
		names:       c.names,
	}
	if z := f.Zone; z != nil {
		if z.Width < 0 || z.Height < 0 {
			return nil, documentError("document.Decode", fmt.Errorf("zone: negative size %dx%d", z.Width, z.Height))
		}
		doc.Zone = graphics.ZoneFromXYWH(z.X, z.Y, z.Width, z.Height)
		doc.HasZone = true
	}
	return doc, nil
}

// Controller returns the tap detector declared with name.
func (d *Document) Controller(name string) (*widgets.Controller, bool) {
	c, ok := d.controllers[name]
	return c, ok
}

// Controllers returns the names of the declared tap detectors in document
// order.
func (d *Document) Controllers() []string {
	return append([]string(nil), d.names...)
}

// Bind sets the handler of the tap detector declared with name.
func (d *Document) Bind(name string, h widgets.Handler) error {
	c, ok := d.controllers[name]
	if !ok {
		return fmt.Errorf("no tap detector named %q", name)
	}
	c.Handler = h
	return nil
}

// BindAll sets h as the handler of every declared tap detector.
func (d *Document) BindAll(h widgets.Handler) {
	for _, c := range d.controllers {
		c.Handler = h
	}
}

func documentError(op string, err error) error {
	return &errors.Error{Op: op, Kind: errors.KindDocument, Err: err}
}
