package flexlist

import "nestview/internal/outline"

// FromDocument flattens an outline document into an adapter. IDs follow
// document order starting at 1, so the same file always yields the same IDs.
func FromDocument(doc outline.Document, opts Options) (*Adapter, error) {
	items := make([]Item, 0, doc.Count())
	nextID := 1
	var walk func(nodes []outline.Node, parent int)
	walk = func(nodes []outline.Node, parent int) {
		for _, n := range nodes {
			id := nextID
			nextID++
			items = append(items, Item{
				ID:            id,
				ParentID:      parent,
				Title:         n.Title,
				Note:          n.Note,
				Branch:        n.Branch(),
				Disabled:      n.Disabled,
				StartExpanded: n.Expanded,
				UpdatedAt:     n.UpdatedTime(),
			})
			walk(n.Items, id)
		}
	}
	walk(doc.Items, 0)
	return New(items, opts)
}
