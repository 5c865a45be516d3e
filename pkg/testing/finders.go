package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
	"github.com/go-drift/framekit/pkg/widgets"
)

// Finder locates drawables in the output of a build.
type Finder interface {
	// Evaluate returns all matching drawables in build order.
	Evaluate(drawables []rendering.Drawable) []rendering.Drawable
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []rendering.Drawable
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() rendering.Drawable {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no drawables: %s", r.description()))
	}
	return r.matches[0]
}

// FirstOK returns the first match, or false if none.
func (r FinderResult) FirstOK() (rendering.Drawable, bool) {
	if len(r.matches) == 0 {
		return rendering.Drawable{}, false
	}
	return r.matches[0], true
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) rendering.Drawable {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.description()))
	}
	return r.matches[index]
}

// All returns all matches in build order.
func (r FinderResult) All() []rendering.Drawable {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// Zone returns the zone of the first match. Panics if no matches.
func (r FinderResult) Zone() graphics.Zone {
	return r.First().Zone
}

// --- Concrete finders ---

// predicateFinder matches drawables satisfying a predicate.
type predicateFinder struct {
	fn   func(rendering.Drawable) bool
	desc string
}

func (f *predicateFinder) Evaluate(drawables []rendering.Drawable) []rendering.Drawable {
	var out []rendering.Drawable
	for _, d := range drawables {
		if f.fn(d) {
			out = append(out, d)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches drawables satisfying fn.
func ByPredicate(fn func(rendering.Drawable) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByKind returns a finder that matches drawables of the given kind.
func ByKind(kind rendering.ObjectKind) Finder {
	return &predicateFinder{
		fn:   func(d rendering.Drawable) bool { return d.Object.Kind == kind },
		desc: fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByText returns a finder that matches labels with exact text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(d rendering.Drawable) bool {
			return d.Object.Label != nil && d.Object.Label.Text == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches labels containing substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(d rendering.Drawable) bool {
			return d.Object.Label != nil && strings.Contains(d.Object.Label.Text, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// BySource returns a finder that matches images referencing source.
func BySource(source string) Finder {
	return &predicateFinder{
		fn: func(d rendering.Drawable) bool {
			return d.Object.Image != nil && d.Object.Image.Source == source
		},
		desc: fmt.Sprintf("BySource(%q)", source),
	}
}

// ByGroup returns a finder that matches the drawables of one child slot.
func ByGroup(id int) Finder {
	return &predicateFinder{
		fn:   func(d rendering.Drawable) bool { return d.GroupID == id },
		desc: fmt.Sprintf("ByGroup(%d)", id),
	}
}

// ByCustom returns a finder that matches opaque drawables of custom widgets
// named name.
func ByCustom(name string) Finder {
	return &predicateFinder{
		fn: func(d rendering.Drawable) bool {
			c, ok := d.Object.Opaque.(*widgets.Custom)
			return ok && c.Name == name
		},
		desc: fmt.Sprintf("ByCustom(%q)", name),
	}
}

// ByPoint returns a finder that matches drawables whose visible area contains
// p.
func ByPoint(p graphics.Point) Finder {
	return &predicateFinder{
		fn:   func(d rendering.Drawable) bool { return d.Visible().Contains(p) },
		desc: fmt.Sprintf("ByPoint%s", p),
	}
}

// inGroupOfFinder matches drawables sharing a group with a match of of.
type inGroupOfFinder struct {
	of       Finder
	matching Finder
}

func (f *inGroupOfFinder) Evaluate(drawables []rendering.Drawable) []rendering.Drawable {
	groups := make(map[int]bool)
	for _, d := range f.of.Evaluate(drawables) {
		groups[d.GroupID] = true
	}
	if len(groups) == 0 {
		return nil
	}
	var out []rendering.Drawable
	for _, d := range f.matching.Evaluate(drawables) {
		if groups[d.GroupID] {
			out = append(out, d)
		}
	}
	return out
}

func (f *inGroupOfFinder) Description() string {
	return fmt.Sprintf("InGroupOf(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// InGroupOf returns a finder that matches drawables satisfying matching that
// belong to the group of a drawable matched by of, such as the surface behind
// a button label.
func InGroupOf(of, matching Finder) Finder {
	return &inGroupOfFinder{of: of, matching: matching}
}
