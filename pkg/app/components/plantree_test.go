package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/mkpdf/pkg/data"
)

func testEntries() []*data.Entry {
	return []*data.Entry{
		{Path: "/docs", Type: data.TypeFolder, Label: "Docs", Depth: 0},
		{Path: "/docs/a.pdf", Type: data.TypePDF, Label: "A", Depth: 1},
		{Path: "/docs/b.png", Type: data.TypeImage, Label: "B", Depth: 1},
	}
}

func TestNewPlanTree(t *testing.T) {
	tree := NewPlanTree()

	if tree == nil {
		t.Fatal("Expected tree to be created")
	}
	if len(tree.Entries) != 0 {
		t.Errorf("Expected empty tree, got %d entries", len(tree.Entries))
	}
	if tree.Selected() != nil {
		t.Error("Expected no selection in an empty tree")
	}
}

func TestPlanTreeNavigation(t *testing.T) {
	tree := NewPlanTree()
	tree.SetEntries(testEntries())

	if tree.Selected().Label != "Docs" {
		t.Errorf("Expected initial selection 'Docs', got %q", tree.Selected().Label)
	}

	tree.Next()
	if tree.Selected().Label != "A" {
		t.Errorf("Expected 'A' after Next, got %q", tree.Selected().Label)
	}

	tree.Prev()
	tree.Prev()
	if tree.Selected().Label != "B" {
		t.Errorf("Expected wrap-around to 'B', got %q", tree.Selected().Label)
	}

	tree.Next()
	if tree.Selected().Label != "Docs" {
		t.Errorf("Expected wrap-around to 'Docs', got %q", tree.Selected().Label)
	}
}

func TestPlanTreeViewShowsLabels(t *testing.T) {
	tree := NewPlanTree()
	tree.SetEntries(testEntries())

	view := tree.View()
	for _, label := range []string{"Docs", "A", "B"} {
		if !strings.Contains(view, label) {
			t.Errorf("Expected view to contain %q", label)
		}
	}
}

func TestPlanTreeViewEmpty(t *testing.T) {
	tree := NewPlanTree()

	view := tree.View()
	if !strings.Contains(view, "Nothing to merge") {
		t.Error("Expected empty-state message")
	}
}

func TestPlanTreeScrollWindow(t *testing.T) {
	var entries []*data.Entry
	for i := 0; i < 50; i++ {
		entries = append(entries, &data.Entry{Type: data.TypePDF, Label: "entry", Depth: 0})
	}

	tree := NewPlanTree()
	tree.Height = 5
	tree.SetEntries(entries)

	for i := 0; i < 10; i++ {
		tree.Next()
	}

	if tree.SelectedIndex != 10 {
		t.Fatalf("Expected selection at 10, got %d", tree.SelectedIndex)
	}
	if tree.offset != 6 {
		t.Errorf("Expected scroll offset 6, got %d", tree.offset)
	}

	lines := strings.Count(tree.View(), "\n")
	if lines != 5 {
		t.Errorf("Expected 5 visible lines, got %d", lines)
	}
}
