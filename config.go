package regrid

import (
	"errors"
	"fmt"
)

// MeasureType selects the AxisMeasure variant of an axis.
type MeasureType string

const (
	// MeasureFixed gives all indices of an axis the same size.
	MeasureFixed MeasureType = "fixed"
	// MeasureStored stores an individual, resizable size per index.
	MeasureStored MeasureType = "stored"
)

// TableConfig configures the geometry of a Table.
// Sizes are in pixels, a terminal host uses one pixel per cell.
type TableConfig struct {
	RowMeasure    MeasureType `mapstructure:"row_measure" yaml:"row_measure"`
	ColumnMeasure MeasureType `mapstructure:"column_measure" yaml:"column_measure"`
	RowHeight     float64     `mapstructure:"row_height" yaml:"row_height"`
	ColumnWidth   float64     `mapstructure:"column_width" yaml:"column_width"`

	// MinSize is the smallest size drag resizing produces.
	MinSize float64 `mapstructure:"min_size" yaml:"min_size"`

	// AutoSizeColumns sizes stored columns by their content
	// whenever the data of the table is set.
	AutoSizeColumns bool    `mapstructure:"auto_size_columns" yaml:"auto_size_columns"`
	MaxAutoWidth    float64 `mapstructure:"max_auto_width" yaml:"max_auto_width"`
	CellPadding     float64 `mapstructure:"cell_padding" yaml:"cell_padding"`
}

// DefaultTableConfig returns the configuration used
// when no config file is present.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		RowMeasure:      MeasureFixed,
		ColumnMeasure:   MeasureStored,
		RowHeight:       1,
		ColumnWidth:     12,
		MinSize:         1,
		AutoSizeColumns: true,
		MaxAutoWidth:    40,
		CellPadding:     2,
	}
}

// Validate checks the configuration for errors.
func (c *TableConfig) Validate() error {
	var errs []error
	for _, m := range []struct {
		name string
		typ  MeasureType
	}{
		{"row_measure", c.RowMeasure},
		{"column_measure", c.ColumnMeasure},
	} {
		if m.typ != MeasureFixed && m.typ != MeasureStored {
			errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q", m.name, MeasureFixed, MeasureStored, m.typ))
		}
	}
	if c.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("row_height must be positive, got %g", c.RowHeight))
	}
	if c.ColumnWidth <= 0 {
		errs = append(errs, fmt.Errorf("column_width must be positive, got %g", c.ColumnWidth))
	}
	if c.MinSize < 0 {
		errs = append(errs, fmt.Errorf("min_size must not be negative, got %g", c.MinSize))
	}
	if c.CellPadding < 0 {
		errs = append(errs, fmt.Errorf("cell_padding must not be negative, got %g", c.CellPadding))
	}
	if c.AutoSizeColumns && c.MaxAutoWidth < c.MinSize {
		errs = append(errs, fmt.Errorf("max_auto_width %g is smaller than min_size %g", c.MaxAutoWidth, c.MinSize))
	}
	return errors.Join(errs...)
}

// NewMeasure returns a new, empty AxisMeasure for axis.
func (c *TableConfig) NewMeasure(axis TableAxis) AxisMeasure {
	typ, size := c.RowMeasure, c.RowHeight
	if axis == Columns {
		typ, size = c.ColumnMeasure, c.ColumnWidth
	}
	if typ == MeasureStored {
		return NewStoredAxisMeasure(size, c.MinSize)
	}
	return NewFixedAxisMeasure(size)
}
