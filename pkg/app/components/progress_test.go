package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/mkpdf/pkg/services"
)

func TestNewMergeTracker(t *testing.T) {
	tracker := NewMergeTracker(80)

	if tracker == nil {
		t.Fatal("Expected tracker to be created")
	}
	if tracker.Active() {
		t.Error("Expected fresh tracker to be inactive")
	}
	if tracker.View() != "" {
		t.Error("Expected empty view before any update")
	}
}

func TestMergeTrackerUpdate(t *testing.T) {
	tracker := NewMergeTracker(80)

	tracker.Update(services.Progress{Stage: "converting", Current: 2, Total: 4})

	if !tracker.Active() {
		t.Error("Expected tracker to be active while converting")
	}

	view := tracker.View()
	if !strings.Contains(view, "converting") {
		t.Errorf("Expected view to mention the stage, got %q", view)
	}
	if !strings.Contains(view, "2/4") {
		t.Errorf("Expected view to show counts, got %q", view)
	}
}

func TestMergeTrackerComplete(t *testing.T) {
	tracker := NewMergeTracker(80)

	tracker.Update(services.Progress{Stage: "complete", Current: 4, Total: 4})

	if tracker.Active() {
		t.Error("Expected tracker to be inactive once complete")
	}
}

func TestSimpleProgress(t *testing.T) {
	bar := SimpleProgress(5, 10, 10)
	if !strings.Contains(bar, "█████") {
		t.Errorf("Expected half-filled bar, got %q", bar)
	}

	if SimpleProgress(1, 0, 10) != "" {
		t.Error("Expected empty bar for zero total")
	}
}
