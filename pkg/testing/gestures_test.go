package testing

import (
	"testing"

	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/testing/internal/testbed"
)

func TestTap_IncrementsCounter(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	var taps []int
	tester.PumpWidget(testbed.Counter{OnTap: func(n int) { taps = append(taps, n) }}.Root())

	fired, err := tester.Tap(ByText("+"))
	if err != nil {
		t.Fatal(err)
	}
	if fired != 1 {
		t.Errorf("fired %d detectors, want 1", fired)
	}
	if !tester.Find(ByText("1")).Exists() {
		t.Errorf("expected the label to show 1 after the tap\n%s", tester.Dump())
	}

	if _, err := tester.TapController("increment"); err != nil {
		t.Fatal(err)
	}
	if len(taps) != 2 || taps[1] != 2 {
		t.Errorf("taps = %v", taps)
	}
	if !tester.Find(ByText("2")).Exists() {
		t.Error("expected the label to show 2")
	}
}

func TestTapAt_Miss(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{}.Root())

	fired, err := tester.TapAt(graphics.Point{X: 10, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	if fired != 0 || !tester.Find(ByText("0")).Exists() {
		t.Errorf("tap on the label should not fire (fired %d)", fired)
	}
}

func TestTap_Errors(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if _, err := tester.TapAt(graphics.Point{}); err == nil {
		t.Error("TapAt without a mounted tree should fail")
	}

	tester.PumpWidget(testbed.Counter{}.Root())
	if _, err := tester.Tap(ByText("-")); err == nil {
		t.Error("Tap with no match should fail")
	}
	if _, err := tester.TapController("decrement"); err == nil {
		t.Error("TapController with an unknown name should fail")
	}
}
