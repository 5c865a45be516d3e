// Package testing provides a widget testing harness for framekit.
//
// # Quick Start
//
// Create a tester, pump a tree, and make assertions on the drawables it
// builds:
//
//	func TestInbox(t *testing.T) {
//	    tester := frametest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(inbox)
//
//	    // Find drawables
//	    title := tester.Find(frametest.ByText("Inbox")).First()
//
//	    // Simulate taps
//	    tester.TapController("refresh")
//
//	    if !tester.Find(frametest.ByText("0 unread")).Exists() {
//	        t.Error("expected '0 unread' label")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the drawables of a build:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/inbox.snapshot.json")
//
// Update snapshots with:
//
//	FRAMEKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import frametest "github.com/go-drift/framekit/pkg/testing"
package testing
