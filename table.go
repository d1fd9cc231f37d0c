package regrid

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/domonda/go-regrid/internal/log"
)

var _ CellRemap = new(Table)

// Table is the index state of a grid over a data View.
//
// It owns the RemapSpec, the published Remap and the
// AxisMeasure of both axes, the TableSelection and
// the queue of outbound selection notifications.
// All mutations go through the methods of Table,
// a new Remap is only published after it has been
// completely built, so readers never observe a
// partially rebuilt mapping.
//
// A Table is not safe for concurrent mutation.
type Table struct {
	id        string
	config    TableConfig
	data      View
	specs     AxisPair[RemapSpec]
	remaps    AxisPair[*Remap]
	measures  AxisPair[AxisMeasure]
	selection TableSelection
	outbox    []SelectIndices
	cache     *remapCache
}

// NewTable returns a Table over data using config.
//
// Both axes start untransformed with identity remaps
// and nothing is selected. The measures of both axes
// are created from config and sized to the shape of data.
// If config.AutoSizeColumns is set, the column widths
// are fitted to the formatted cell contents.
//
// Every Table gets a random UUID as ID
// that identifies it in logs and notifications.
//
// Parameters:
//   - data: The source View, it must not be nil
//   - config: Measure kinds, default sizes and auto sizing options
//
// Returns:
//   - The new Table
//   - An error if data is nil or config is invalid
//
// Example:
//
//	table, err := regrid.NewTable(view, regrid.DefaultTableConfig())
//	if err != nil {
//		return err
//	}
//	err = table.ToggleSort(0, false)
func NewTable(data View, config TableConfig) (*Table, error) {
	if data == nil {
		return nil, errors.New("nil data View")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}
	t := &Table{
		id:     uuid.NewString(),
		config: config,
		remaps: NewAxisPair(IdentityRemap(0), IdentityRemap(0)),
		measures: NewAxisPair(
			config.NewMeasure(Rows),
			config.NewMeasure(Columns),
		),
		cache: newRemapCache(),
	}
	if err := t.SetData(data); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewTable calls NewTable and panics on an error.
func MustNewTable(data View, config TableConfig) *Table {
	t, err := NewTable(data, config)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the unique ID of the table
// used as source of its SelectIndices notifications.
func (t *Table) ID() string { return t.id }

// Config returns the configuration of the table.
func (t *Table) Config() TableConfig { return t.config }

// Data returns the underlying data View in logical order.
func (t *Table) Data() View { return t.data }

// SetData replaces the underlying data.
//
// The RemapSpecs of both axes are rebuilt against the new data.
// If a spec is invalid for the new data an error is returned
// and the table is left unchanged.
// The selection is revalidated by its logical address.
func (t *Table) SetData(data View) error {
	var remaps AxisPair[*Remap]
	for _, axis := range Axes {
		spec := t.specs.Get(axis)
		remap, err := BuildRemap(spec, AxisRemapper(data, axis))
		if err != nil {
			log.Warn(log.CatData, "rejected data", "table", t.id, "axis", axis, "spec", spec, "error", err)
			return err
		}
		remaps.Set(axis, remap)
	}

	t.data = data
	t.cache.flush()
	for _, axis := range Axes {
		t.publish(axis, t.specs.Get(axis), remaps.Get(axis))
	}
	if t.config.AutoSizeColumns {
		t.AutoSizeColumns()
	}
	t.setSelection(t.selection.Revalidate(t))

	log.Debug(log.CatData, "set data", "table", t.id, "rows", data.NumRows(), "cols", NumCols(data))
	return nil
}

func (t *Table) buildRemap(axis TableAxis, spec RemapSpec) (*Remap, error) {
	if remap, ok := t.cache.get(axis, spec); ok {
		return remap, nil
	}
	remap, err := BuildRemap(spec, AxisRemapper(t.data, axis))
	if err != nil {
		return nil, err
	}
	t.cache.set(axis, spec, remap)
	return remap, nil
}

func (t *Table) publish(axis TableAxis, spec RemapSpec, remap *Remap) {
	t.specs.Set(axis, spec)
	t.remaps.Set(axis, remap)
	t.measures.Get(axis).ApplyRemap(remap)
	log.Debug(log.CatRemap, "published remap", "table", t.id, "axis", axis, "spec", spec, "remap", remap)
}

// RemapSpec returns the current RemapSpec of axis.
func (t *Table) RemapSpec(axis TableAxis) RemapSpec {
	return t.specs.Get(axis)
}

// SetRemapSpec builds spec for axis and publishes the result.
// On error the table is left unchanged.
// Measures follow the new remap and the selection
// is revalidated by its logical address.
func (t *Table) SetRemapSpec(axis TableAxis, spec RemapSpec) error {
	remap, err := t.buildRemap(axis, spec)
	if err != nil {
		log.Warn(log.CatRemap, "rejected spec", "table", t.id, "axis", axis, "spec", spec, "error", err)
		return err
	}
	t.publish(axis, spec, remap)
	t.setSelection(t.selection.Revalidate(t))
	return nil
}

// ToggleSort toggles the sort of the rows by the logical column col,
// see RemapSpec.ToggleSort.
func (t *Table) ToggleSort(col LogIdx, extend bool) error {
	spec := t.specs.Row
	spec.ToggleSort(int(col), extend)
	return t.SetRemapSpec(Rows, spec)
}

// ClearSort removes all sort keys of the rows.
func (t *Table) ClearSort() error {
	spec := t.specs.Row
	spec.ClearSort()
	return t.SetRemapSpec(Rows, spec)
}

// SetVisibleColumns shows the logical columns cols in the passed order
// and hides all other columns. A nil cols shows all columns.
func (t *Table) SetVisibleColumns(cols []LogIdx) error {
	spec := t.specs.Col
	spec.Retain = slices.Clone(cols)
	return t.SetRemapSpec(Columns, spec)
}

// HideColumns hides the logical columns cols
// keeping the order of the remaining visible columns.
func (t *Table) HideColumns(cols ...LogIdx) error {
	visible := slices.DeleteFunc(t.remaps.Col.LogIndices(), func(log LogIdx) bool {
		return slices.Contains(cols, log)
	})
	return t.SetVisibleColumns(visible)
}

// Remap returns the published Remap of axis.
// The returned Remap is immutable.
func (t *Table) Remap(axis TableAxis) *Remap {
	return t.remaps.Get(axis)
}

// Measure returns the AxisMeasure of axis.
func (t *Table) Measure(axis TableAxis) AxisMeasure {
	return t.measures.Get(axis)
}

// NumVisible returns the number of visual indices of axis.
func (t *Table) NumVisible(axis TableAxis) int {
	return t.remaps.Get(axis).NumVisible()
}

// LogIdx implements CellDemap.
func (t *Table) LogIdx(axis TableAxis, vis VisIdx) (LogIdx, bool) {
	return t.remaps.Get(axis).LogIdx(vis)
}

// VisIdx implements CellRemap.
func (t *Table) VisIdx(axis TableAxis, log LogIdx) (VisIdx, bool) {
	return t.remaps.Get(axis).VisIdx(log)
}

// LogCell returns the logical address of the visual cell vis.
func (t *Table) LogCell(vis CellAddress[VisIdx]) (CellAddress[LogIdx], bool) {
	return LogCell(t, vis)
}

// VisCell returns the visual address of the logical cell log.
func (t *Table) VisCell(log CellAddress[LogIdx]) (CellAddress[VisIdx], bool) {
	return VisCell(t, log)
}

// VisibleView returns a View of the data in visual order.
func (t *Table) VisibleView() *RemappedView {
	return NewRemappedView(t.data, t.remaps.Row, t.remaps.Col)
}

// CellAtPixel returns the visual cell covering the pixel position (x, y)
// or false if there is no cell at that position.
func (t *Table) CellAtPixel(x, y float64) (CellAddress[VisIdx], bool) {
	row, ok := t.measures.Row.VisAtPixel(y)
	if !ok {
		return CellAddress[VisIdx]{}, false
	}
	col, ok := t.measures.Col.VisAtPixel(x)
	if !ok {
		return CellAddress[VisIdx]{}, false
	}
	return CellAddress[VisIdx]{Row: row, Col: col}, true
}

// CellRect returns the pixel rectangle of the visual cell vis.
func (t *Table) CellRect(vis CellAddress[VisIdx]) (x, y, width, height float64) {
	return t.measures.Col.PixelOffset(vis.Col),
		t.measures.Row.PixelOffset(vis.Row),
		t.measures.Col.PixelLength(vis.Col),
		t.measures.Row.PixelLength(vis.Row)
}

// Resize sets the size of the visual index vis of axis.
func (t *Table) Resize(axis TableAxis, vis VisIdx, size float64) error {
	err := t.measures.Get(axis).SetSize(vis, size)
	if err != nil {
		return err
	}
	log.Debug(log.CatMeasure, "resized", "table", t.id, "axis", axis, "vis", vis, "size", size)
	return nil
}

// ResizeToPixel resizes the visual index vis of axis so that its far edge
// is at the pixel px, limited by the minimum size, and returns the new size.
func (t *Table) ResizeToPixel(axis TableAxis, vis VisIdx, px float64) (float64, error) {
	size, err := t.measures.Get(axis).SetFarPixel(vis, px)
	if err != nil {
		return size, err
	}
	log.Debug(log.CatMeasure, "resized to pixel", "table", t.id, "axis", axis, "vis", vis, "px", px, "size", size)
	return size, nil
}

// AutoSizeColumns sets the size of every logical column to the
// display width of its content if the column measure stores sizes.
// It returns false for a fixed column measure.
func (t *Table) AutoSizeColumns() bool {
	measure, ok := t.measures.Col.(*StoredAxisMeasure)
	if !ok {
		return false
	}
	widths := ContentWidths(t.data, t.config.CellPadding, t.config.MaxAutoWidth)
	for col, width := range widths {
		if err := measure.SetLogSize(LogIdx(col), max(width, t.config.MinSize)); err != nil {
			log.ErrorErr(log.CatMeasure, "auto sizing column", err, "table", t.id, "col", col)
			return false
		}
	}
	return true
}

// Selection returns the current selection.
func (t *Table) Selection() TableSelection {
	return t.selection
}

// CellStatus returns the SelectionStatus of the visual cell vis.
func (t *Table) CellStatus(vis CellAddress[VisIdx]) SelectionStatus {
	return t.selection.CellStatus(vis)
}

// MoveFocus moves the selection by offset along axis
// and reports if the selection changed.
//
// The move is resolved in visual space through the
// current remaps of the table, see TableSelection.MoveFocus.
// A successful move queues a SelectIndices notification
// for every axis whose selected indices changed,
// the host receives them with DrainNotifications.
// A move beyond the visible cells or of a selected
// row or column leaves the selection unchanged
// and queues nothing.
//
// Example:
//
//	if table.MoveFocus(regrid.Rows, 1) {
//		for _, n := range table.DrainNotifications() {
//			host.Select(n)
//		}
//	}
func (t *Table) MoveFocus(axis TableAxis, offset VisOffset) bool {
	moved, ok := t.selection.MoveFocus(axis, offset, t)
	if !ok {
		return false
	}
	t.setSelection(moved)
	return true
}

// SelectCell selects the visual cell vis
// and reports if vis exists.
func (t *Table) SelectCell(vis CellAddress[VisIdx]) bool {
	sel, ok := SelectVisCell(t, vis)
	if !ok {
		return false
	}
	t.setSelection(sel)
	return true
}

// SelectSlice selects the visual row or column vis
// and reports if vis exists.
func (t *Table) SelectSlice(axis TableAxis, vis VisIdx) bool {
	sel, ok := SelectVisSlice(t, axis, vis)
	if !ok {
		return false
	}
	t.setSelection(sel)
	return true
}

// ClearSelection removes the selection.
func (t *Table) ClearSelection() {
	t.setSelection(TableSelection{})
}

func (t *Table) setSelection(sel TableSelection) {
	notes := selectionNotifications(t.id, t.selection, sel)
	t.selection = sel
	if len(notes) == 0 {
		return
	}
	t.outbox = append(t.outbox, notes...)
	log.Debug(log.CatSelection, "selection changed", "table", t.id, "selection", sel, "notifications", len(notes))
}

// DrainNotifications returns all SelectIndices notifications
// enqueued since the last call and empties the queue.
func (t *Table) DrainNotifications() []SelectIndices {
	notes := t.outbox
	t.outbox = nil
	return notes
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{%s %dx%d of %dx%d, %s}",
		t.id,
		t.remaps.Row.NumVisible(),
		t.remaps.Col.NumVisible(),
		t.remaps.Row.SourceLen(),
		t.remaps.Col.SourceLen(),
		t.selection,
	)
}
