package ui

import (
	"strings"

	tree "github.com/charmbracelet/lipgloss/tree"

	"nestview/internal/flexlist"
)

// generateTreeLinesLabeled builds a guide-lined tree for a flat, ordered
// slice of visible items using a caller-provided label function. The input
// order defines sibling ordering; one output line per item.
func generateTreeLinesLabeled(items []flexlist.Item, labelFn func(i int, it flexlist.Item) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	tr := tree.New()
	nodes := make(map[int]*tree.Tree, len(items))

	// First pass: create all nodes
	for i, it := range items {
		node := tree.Root(labelFn(i, it))
		nodes[it.ID] = node
	}

	// Second pass: attach children to parents, otherwise add as root child.
	// A visible item whose parent is filtered out renders at root level.
	for _, it := range items {
		node := nodes[it.ID]
		if it.ParentID != 0 {
			if parent, ok := nodes[it.ParentID]; ok {
				parent.Child(node)
				continue
			}
		}
		tr.Child(node)
	}

	lines := strings.Split(tr.String(), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// generateTreeLines builds tree lines using the default row label.
func generateTreeLines(items []flexlist.Item) []string {
	return generateTreeLinesLabeled(items, func(_ int, it flexlist.Item) string { return displayItem(it) })
}
