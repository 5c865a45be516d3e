package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/go-drift/framekit/cmd/framekit/internal/config"
	"github.com/go-drift/framekit/pkg/document"
	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/theme"
)

// fallbackSize is the zone size used when nothing else provides one.
var fallbackSize = graphics.Size{Width: 800, Height: 600}

// terminalSize reports the size of the terminal on stdout, in cells. Replaced
// by tests.
var terminalSize = func() (graphics.Size, bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return graphics.Size{}, false
	}
	return graphics.Size{Width: w, Height: h}, true
}

// sceneOptions holds the flags shared by the commands loading a document.
type sceneOptions struct {
	document string
	size     string
	theme    string
	format   string
	out      string
	verbose  bool
}

// parseSceneFlags splits args into options and positional arguments.
func parseSceneFlags(args []string) (sceneOptions, []string, error) {
	var opts sceneOptions
	var positional []string

	value := func(i *int, name string) (string, error) {
		arg := args[*i]
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v, nil
		}
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch {
		case arg == "--size" || strings.HasPrefix(arg, "--size="):
			opts.size, err = value(&i, "--size")
		case arg == "--theme" || strings.HasPrefix(arg, "--theme="):
			opts.theme, err = value(&i, "--theme")
		case arg == "--format" || strings.HasPrefix(arg, "--format="):
			opts.format, err = value(&i, "--format")
		case arg == "-o":
			opts.out, err = value(&i, "-o")
		case arg == "--out" || strings.HasPrefix(arg, "--out="):
			opts.out, err = value(&i, "--out")
		case arg == "--verbose":
			opts.verbose = true
		case strings.HasPrefix(arg, "--"):
			err = fmt.Errorf("unknown flag %s", arg)
		default:
			positional = append(positional, arg)
		}
		if err != nil {
			return sceneOptions{}, nil, err
		}
	}
	return opts, positional, nil
}

// scene is a loaded document with the zone and theme it is built with.
type scene struct {
	doc    *document.Document
	zone   graphics.Zone
	theme  *theme.Theme
	format string
	cfg    *config.Resolved
}

// loadScene loads the document named by opts and resolves its zone and theme.
//
// The zone is taken from, in order: --size, the document, framekit.yaml, the
// terminal, and fallbackSize. The theme file from --theme, the document, then
// framekit.yaml; without any the default theme is used.
func loadScene(opts sceneOptions) (*scene, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	errors.SetHandler(&errors.LogHandler{Verbose: opts.verbose || cfg.Verbose, Out: stderr})

	doc, err := document.Load(opts.document)
	if err != nil {
		return nil, err
	}

	s := &scene{doc: doc, cfg: cfg, format: cfg.Format}
	if opts.format != "" {
		if err := config.ValidateFormat(opts.format); err != nil {
			return nil, err
		}
		s.format = opts.format
	}

	switch {
	case opts.size != "":
		size, err := config.ParseSize(opts.size)
		if err != nil {
			return nil, err
		}
		s.zone = graphics.Zone{Size: size}
	case doc.HasZone:
		s.zone = doc.Zone
	case cfg.HasSize:
		s.zone = graphics.Zone{Size: cfg.Size}
	default:
		size, ok := terminalSize()
		if !ok || size.IsEmpty() {
			size = fallbackSize
		}
		s.zone = graphics.Zone{Size: size}
	}

	themePath := opts.theme
	if themePath == "" {
		themePath = doc.Theme
	}
	if themePath == "" {
		themePath = cfg.Theme
	}
	if themePath != "" {
		th, err := theme.LoadFile(themePath)
		if err != nil {
			return nil, err
		}
		s.theme = th
	}
	s.theme = theme.OrDefault(s.theme)

	return s, nil
}
