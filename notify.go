package regrid

import "fmt"

// SelectIndices is the outbound notification that the
// selection projected onto one axis of a table changed.
//
// A Table enqueues SelectIndices messages whenever a
// selection change alters the projection of an axis,
// the host event loop collects them with Table.DrainNotifications.
type SelectIndices struct {
	// Table is the ID of the table that changed its selection.
	Table string

	Axis    TableAxis
	Indices IndicesSelection
}

func (n SelectIndices) String() string {
	return fmt.Sprintf("SelectIndices{%s %s %s}", n.Table, n.Axis, n.Indices)
}

// selectionNotifications returns the notifications for the
// axes whose projection differs between before and after.
func selectionNotifications(table string, before, after TableSelection) []SelectIndices {
	var notes []SelectIndices
	for _, axis := range Axes {
		indices := after.ToAxisSelection(axis)
		if indices == before.ToAxisSelection(axis) {
			continue
		}
		notes = append(notes, SelectIndices{Table: table, Axis: axis, Indices: indices})
	}
	return notes
}
