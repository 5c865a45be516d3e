package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/framekit/pkg/engine"
)

// settleDelay is how long the watcher waits for a burst of file events to end
// before rebuilding.
const settleDelay = 100 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Rebuild a document whenever it changes",
		Long: `Build a document, then rebuild and print it again each time the
document or its theme file changes. Stop with Ctrl-C.

Build errors are printed and the previous output is kept; watching goes on.

Flags are those of "framekit build".`,
		Usage: "framekit watch <document> [--size WxH] [--theme FILE] [--format FORMAT] [-o FILE]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	opts, positional, err := parseSceneFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("a document is required\n\nUsage: framekit watch <document>")
	}
	opts.document = positional[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watch(ctx, opts, func(err error) {
		if err != nil {
			log.Printf("WARNING: rebuild failed: %v", err)
		}
	})
}

// watch builds opts.document and rebuilds it on every change until ctx is
// done. onBuild is called after each build attempt.
func watch(ctx context.Context, opts sceneOptions, onBuild func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	doc, err := filepath.Abs(opts.document)
	if err != nil {
		return err
	}

	// Editors often replace files by renaming, so directories are watched
	// rather than the files themselves.
	watched := make(map[string]bool)
	files := make(map[string]bool)
	track := func(path string) error {
		files[path] = true
		dir := filepath.Dir(path)
		if watched[dir] {
			return nil
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
		return nil
	}
	if err := track(doc); err != nil {
		return err
	}

	timings := engine.NewBuildTimingBuffer(0)
	rebuild := func() {
		themeFile, err := buildOnce(opts, timings)
		if themeFile != "" {
			if abs, aerr := filepath.Abs(themeFile); aerr == nil {
				if terr := track(abs); terr != nil {
					log.Printf("WARNING: %v", terr)
				}
			}
		}
		onBuild(err)
	}
	rebuild()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			settle = time.After(settleDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("WARNING: watcher: %v", err)
		case <-settle:
			settle = nil
			rebuild()
		}
	}
}

// buildOnce loads and builds the scene of opts and writes it out. The build
// time is added to timings. It returns the theme file the scene used, if any,
// so that it can be watched too.
func buildOnce(opts sceneOptions, timings *engine.BuildTimingBuffer) (string, error) {
	s, err := loadScene(opts)
	if err != nil {
		return "", err
	}
	themeFile := opts.theme
	if themeFile == "" {
		themeFile = s.doc.Theme
	}
	if themeFile == "" {
		themeFile = s.cfg.Theme
	}

	view := engine.NewView(s.zone, s.doc.Root, s.theme)
	drawables, err := view.Build()
	if err != nil {
		return themeFile, err
	}
	timings.Add(view.Timings().Stats().Last)
	stats := timings.Stats()
	if err := withOutput(opts.out, func(w io.Writer) error {
		return writeDrawables(w, s, view, drawables, stats)
	}); err != nil {
		return themeFile, err
	}
	fmt.Fprintf(stderr, "rebuilt %s: %s\n", opts.document, stats)
	return themeFile, nil
}
