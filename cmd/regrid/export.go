package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/csvtable"
	"github.com/domonda/go-regrid/htmltable"
	"github.com/domonda/go-regrid/internal/log"
)

type exportFlags struct {
	format    string
	output    string
	separator string
	encoding  string
	selection string
	caption   string
}

func (a *app) newExportCmd() *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the sorted and filtered table as CSV or HTML",
		Long: `Write the visible rows and columns of a table in visual order.

--select marks a selection in HTML output, it takes visual indices:
  row:N        the N-th visible row
  col:N        the N-th visible column
  R,C          the cell at visible row R and column C`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.openTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if f.selection != "" {
				if err := applySelection(table, f.selection); err != nil {
					return err
				}
			}

			var buf bytes.Buffer
			switch strings.ToLower(f.format) {
			case "csv":
				format := csvtable.NewFormat(f.separator)
				format.Encoding = f.encoding
				writer, err := csvtable.NewWriterForFormat(format)
				if err != nil {
					return err
				}
				err = writer.WithHeaderRow(true).WriteTable(cmd.Context(), &buf, table)
				if err != nil {
					return err
				}
			case "html":
				writer := htmltable.NewWriter()
				if f.caption != "" {
					writer = writer.WithCaption(f.caption)
				}
				if err := writer.WriteTable(cmd.Context(), &buf, table); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format %q, expected csv or html", f.format)
			}

			if f.output == "" || f.output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			log.Info(log.CatData, "Exporting table", "path", f.output, "format", f.format, "bytes", buf.Len())
			return fs.File(f.output).WriteAll(buf.Bytes())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "csv", "output format: csv or html")
	flags.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&f.separator, "separator", ";", "CSV field separator")
	flags.StringVar(&f.encoding, "encoding", "UTF-8", "CSV character encoding")
	flags.StringVar(&f.selection, "select", "", "selection to mark in HTML output")
	flags.StringVar(&f.caption, "caption", "", "HTML table caption")
	return cmd
}

// applySelection parses sel as row:N, col:N or R,C
// and selects it in table.
func applySelection(table *regrid.Table, sel string) error {
	index := func(s string) (regrid.VisIdx, error) {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("invalid selection %q: %w", sel, err)
		}
		return regrid.VisIdx(i), nil
	}

	var ok bool
	if kind, n, found := strings.Cut(sel, ":"); found {
		vis, err := index(n)
		if err != nil {
			return err
		}
		switch strings.ToLower(kind) {
		case "row":
			ok = table.SelectSlice(regrid.Rows, vis)
		case "col", "column":
			ok = table.SelectSlice(regrid.Columns, vis)
		default:
			return fmt.Errorf("invalid selection %q: expected row:N or col:N", sel)
		}
	} else {
		r, c, found := strings.Cut(sel, ",")
		if !found {
			return fmt.Errorf("invalid selection %q: expected R,C", sel)
		}
		row, err := index(r)
		if err != nil {
			return err
		}
		col, err := index(c)
		if err != nil {
			return err
		}
		ok = table.SelectCell(regrid.NewCellAddress(row, col))
	}
	if !ok {
		return fmt.Errorf("selection %q is outside of the visible table: %w", sel, regrid.ErrIndexOutOfRange)
	}
	return nil
}
