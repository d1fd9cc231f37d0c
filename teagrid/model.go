// Package teagrid provides a bubbletea grid component
// that browses a regrid.Table in the terminal.
//
// One terminal cell is one pixel of the table's AxisMeasures,
// so column widths are measured in characters and row heights in lines.
package teagrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/internal/log"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	wheelStep     = 3
)

// DataMsg replaces the data of the grid's table.
// Sort, filter and selection are kept where still valid.
type DataMsg struct {
	View regrid.View
}

// SelectionMsg carries the selection notifications
// the grid's table emitted during one update.
type SelectionMsg struct {
	Notifications []regrid.SelectIndices
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap sets the keybindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithStyles sets the styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// WithOnSelect registers a callback for the selection
// notifications of every update. The returned command may be nil.
func WithOnSelect(onSelect func([]regrid.SelectIndices) tea.Cmd) Option {
	return func(m *Model) { m.onSelect = onSelect }
}

// Model is the grid component.
type Model struct {
	table    *regrid.Table
	keys     KeyMap
	styles   Styles
	help     help.Model
	onSelect func([]regrid.SelectIndices) tea.Cmd

	width  int
	height int

	// first visible row and column
	firstRow regrid.VisIdx
	firstCol regrid.VisIdx

	err error
}

// New returns a grid Model for table.
func New(table *regrid.Table, opts ...Option) Model {
	m := Model{
		table:  table,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = m.width
	return m
}

// Table returns the table of the grid.
func (m Model) Table() *regrid.Table { return m.table }

// Err returns the error of the last rejected operation
// or nil if the last operation succeeded.
func (m Model) Err() error { return m.err }

// FirstVisible returns the top left visible cell.
func (m Model) FirstVisible() regrid.CellAddress[regrid.VisIdx] {
	return regrid.NewCellAddress(m.firstRow, m.firstCol)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.table.Selection()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case DataMsg:
		m.setErr(m.table.SetData(msg.View))

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.clampScroll()
	if m.table.Selection() != before {
		m.scrollToSelection()
	}
	return m, m.notify()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.table.MoveFocus(regrid.Rows, -1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveFocus(regrid.Rows, 1)
	case key.Matches(msg, m.keys.Left):
		m.table.MoveFocus(regrid.Columns, -1)
	case key.Matches(msg, m.keys.Right):
		m.table.MoveFocus(regrid.Columns, 1)
	case key.Matches(msg, m.keys.PageUp):
		m.movePage(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.movePage(1)

	case key.Matches(msg, m.keys.SelectRow):
		if row, _, hasRow, _ := m.focus(); hasRow {
			m.table.SelectSlice(regrid.Rows, row)
		}
	case key.Matches(msg, m.keys.SelectColumn):
		if _, col, _, hasCol := m.focus(); hasCol {
			m.table.SelectSlice(regrid.Columns, col)
		}
	case key.Matches(msg, m.keys.Escape):
		m.table.ClearSelection()

	case key.Matches(msg, m.keys.Sort), key.Matches(msg, m.keys.SortExtend):
		if col, ok := m.focusLogCol(); ok {
			m.setErr(m.table.ToggleSort(col, key.Matches(msg, m.keys.SortExtend)))
		}
	case key.Matches(msg, m.keys.ClearSort):
		m.setErr(m.table.ClearSort())
	case key.Matches(msg, m.keys.HideColumn):
		if col, ok := m.focusLogCol(); ok {
			m.setErr(m.table.HideColumns(col))
		}
	case key.Matches(msg, m.keys.ShowAll):
		m.setErr(m.table.SetVisibleColumns(nil))

	case key.Matches(msg, m.keys.Grow):
		m.resizeFocusColumn(1)
	case key.Matches(msg, m.keys.Shrink):
		m.resizeFocusColumn(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.firstRow -= wheelStep
	case msg.Button == tea.MouseButtonWheelDown:
		m.firstRow += wheelStep

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		cols := m.table.Measure(regrid.Columns)
		x := cols.PixelOffset(m.firstCol) + float64(msg.X)
		if msg.Y == 0 {
			// click on header sorts
			col, ok := cols.VisAtPixel(x)
			if !ok {
				return
			}
			logCol, _ := m.table.LogIdx(regrid.Columns, col)
			m.setErr(m.table.ToggleSort(logCol, msg.Shift))
			return
		}
		if msg.Y > m.bodyHeight() {
			return
		}
		y := m.table.Measure(regrid.Rows).PixelOffset(m.firstRow) + float64(msg.Y-1)
		if vis, ok := m.table.CellAtPixel(x, y); ok {
			m.table.SelectCell(vis)
		}
	}
}

// movePage moves the focus by one page of rows
// stopping at the first or last row.
func (m *Model) movePage(dir int) {
	row, _, hasRow, _ := m.focus()
	numRows := m.table.NumVisible(regrid.Rows)
	if !hasRow || numRows == 0 {
		m.table.MoveFocus(regrid.Rows, regrid.VisOffset(dir))
		return
	}
	target := min(max(int(row)+dir*m.bodyHeight(), 0), numRows-1)
	if target != int(row) {
		m.table.MoveFocus(regrid.Rows, regrid.VisOffset(target-int(row)))
	}
}

func (m *Model) resizeFocusColumn(delta float64) {
	_, col, _, hasCol := m.focus()
	if !hasCol {
		return
	}
	size := m.table.Measure(regrid.Columns).PixelLength(col) + delta
	m.setErr(m.table.Resize(regrid.Columns, col, max(size, m.table.Config().MinSize)))
}

// focus returns the visual row and column of the selection.
func (m Model) focus() (row, col regrid.VisIdx, hasRow, hasCol bool) {
	sel := m.table.Selection()
	if cell, ok := sel.Cell(); ok {
		return cell.Vis.Row, cell.Vis.Col, true, true
	}
	if slice, ok := sel.Slice(); ok {
		if slice.Axis == regrid.Rows {
			return slice.Vis, 0, true, false
		}
		return 0, slice.Vis, false, true
	}
	return 0, 0, false, false
}

func (m Model) focusLogCol() (regrid.LogIdx, bool) {
	_, col, _, hasCol := m.focus()
	if !hasCol {
		return 0, false
	}
	return m.table.LogIdx(regrid.Columns, col)
}

func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		log.Warn(log.CatUI, "grid operation failed", "table", m.table.ID(), "error", err)
	}
}

func (m Model) notify() tea.Cmd {
	notes := m.table.DrainNotifications()
	if len(notes) == 0 {
		return nil
	}
	cmds := []tea.Cmd{func() tea.Msg { return SelectionMsg{Notifications: notes} }}
	if m.onSelect != nil {
		cmds = append(cmds, m.onSelect(notes))
	}
	return tea.Batch(cmds...)
}

// bodyHeight is the number of lines for table rows
// below the header and above status and help.
func (m Model) bodyHeight() int {
	return max(m.height-2-lipgloss.Height(m.help.View(m.keys)), 1)
}

func (m *Model) clampScroll() {
	m.firstRow = min(max(m.firstRow, 0), max(regrid.VisIdx(m.table.NumVisible(regrid.Rows))-1, 0))
	m.firstCol = min(max(m.firstCol, 0), max(regrid.VisIdx(m.table.NumVisible(regrid.Columns))-1, 0))
}

// scrollToSelection scrolls the least distance
// that makes the focused row and column visible.
func (m *Model) scrollToSelection() {
	row, col, hasRow, hasCol := m.focus()
	if hasRow {
		m.firstRow = scrollTo(m.table.Measure(regrid.Rows), m.firstRow, row, m.bodyHeight())
	}
	if hasCol {
		m.firstCol = scrollTo(m.table.Measure(regrid.Columns), m.firstCol, col, m.width)
	}
}

func scrollTo(measure regrid.AxisMeasure, first, vis regrid.VisIdx, extent int) regrid.VisIdx {
	if vis < first {
		return vis
	}
	for first < vis && measure.FarPixel(vis)-measure.PixelOffset(first) > float64(extent) {
		first++
	}
	return first
}

// View implements tea.Model.
func (m Model) View() string {
	var (
		b          strings.Builder
		rows       = m.table.Measure(regrid.Rows)
		cols       = m.table.Measure(regrid.Columns)
		bodyHeight = m.bodyHeight()
		x0         = cols.PixelOffset(m.firstCol)
		y0         = rows.PixelOffset(m.firstRow)
		view       = m.table.VisibleView()
		titles     = view.Columns()
		sel        = m.table.Selection()
		sortSpec   = m.table.RemapSpec(regrid.Rows)
		slice, _   = sel.Slice()
		isSlice    = sel.Kind() == regrid.SingleSliceSelection
	)
	firstCol, lastCol, hasCols := cols.VisRange(x0, x0+float64(m.width))
	firstRow, lastRow, hasRows := rows.VisRange(y0, y0+float64(bodyHeight))

	var line strings.Builder
	if hasCols {
		for col := firstCol; col <= lastCol; col++ {
			title := titles[col]
			logCol, _ := m.table.LogIdx(regrid.Columns, col)
			if dir, ok := sortSpec.SortDirectionOf(int(logCol)); ok {
				title += sortArrow(dir)
			}
			style := m.styles.Header
			if isSlice && slice.Axis == regrid.Columns && slice.Vis == col {
				style = style.Inherit(m.styles.Selected)
			}
			line.WriteString(renderCell(title, cols.PixelLength(col), style))
		}
	}
	b.WriteString(ansi.Truncate(line.String(), m.width, ""))
	b.WriteByte('\n')

	numLines := 0
	if hasRows && hasCols {
		for row := firstRow; row <= lastRow && numLines < bodyHeight; row++ {
			line.Reset()
			rowSelected := isSlice && slice.Axis == regrid.Rows && slice.Vis == row
			for col := firstCol; col <= lastCol; col++ {
				style := m.styles.Cell
				switch status := sel.CellStatus(regrid.NewCellAddress(row, col)); {
				case status == regrid.Primary:
					style = m.styles.Primary
				case status.IsSelected(),
					rowSelected,
					isSlice && slice.Axis == regrid.Columns && slice.Vis == col:
					style = m.styles.Selected
				}
				text := regrid.FormatCell(view.Cell(int(row), int(col)))
				line.WriteString(renderCell(text, cols.PixelLength(col), style))
			}
			b.WriteString(ansi.Truncate(line.String(), m.width, ""))
			b.WriteByte('\n')
			numLines++
			// rows higher than one line
			for extra := int(rows.PixelLength(row)) - 1; extra > 0 && numLines < bodyHeight; extra-- {
				b.WriteByte('\n')
				numLines++
			}
		}
	}
	for ; numLines < bodyHeight; numLines++ {
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	rows := m.table.Remap(regrid.Rows)
	cols := m.table.Remap(regrid.Columns)
	status := fmt.Sprintf("%s  rows %d/%d  cols %d/%d",
		m.table.Data().Title(),
		rows.NumVisible(), rows.SourceLen(),
		cols.NumVisible(), cols.SourceLen(),
	)
	if sel := m.table.Selection(); !sel.IsEmpty() {
		status += "  " + sel.String()
	}
	status = m.styles.Status.Render(status)
	if m.err != nil {
		status += "  " + m.styles.Error.Render(m.err.Error())
	}
	return ansi.Truncate(status, m.width, "…")
}

func sortArrow(dir regrid.SortDirection) string {
	if dir == regrid.Descending {
		return "▼"
	}
	return "▲"
}

// renderCell renders text into width terminal cells
// leaving one cell as gap to the next column.
func renderCell(text string, width float64, style lipgloss.Style) string {
	w := int(width)
	if w <= 0 {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", " ")
	text = ansi.Truncate(text, max(w-1, 0), "…")
	return style.Render(text + strings.Repeat(" ", w-ansi.StringWidth(text)))
}
