package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/testing/internal/testbed"
	"github.com/go-drift/framekit/pkg/theme"
	"github.com/go-drift/framekit/pkg/widgets"
)

func box(w, h int, color graphics.Color) *widgets.Layout {
	return &widgets.Layout{Children: []widgets.Widget{
		&widgets.Container{Size: graphics.Size{Width: w, Height: h}, Style: &theme.Style{Color: color}},
	}}
}

func TestCaptureSnapshot_Empty(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	snap := tester.CaptureSnapshot()
	if snap == nil || len(snap.Drawables) != 0 {
		t.Fatalf("expected empty snapshot before PumpWidget, got %+v", snap)
	}
}

func TestCaptureSnapshot_Golden(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	if err := tester.PumpWidget(testbed.Counter{}.Root()); err != nil {
		t.Fatal(err)
	}

	tester.CaptureSnapshot().MatchesFile(t, filepath.Join("testdata", "counter.snapshot.json"))
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(box(50, 50, graphics.ColorBlack))

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(box(50, 50, graphics.RGB(255, 0, 0)))
	a := tester.CaptureSnapshot()

	tester.PumpWidget(box(100, 50, graphics.RGB(0, 255, 0)))
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(updateEnv, "")
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(box(80, 40, graphics.ColorBlack))

	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "box.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(updateEnv, "")
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(box(50, 50, graphics.ColorBlack))
	snap := tester.CaptureSnapshot()

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing.json"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(updateEnv, "")
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(box(50, 50, graphics.RGB(255, 0, 0)))
	first := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.PumpWidget(box(99, 99, graphics.RGB(0, 0, 255)))
	second := tester.CaptureSnapshot()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(box(60, 30, graphics.ColorBlack))
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "update.snapshot.json")

	t.Setenv(updateEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
