package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domonda/go-regrid/csvtable"
)

func (a *app) newShowCmd() *cobra.Command {
	var (
		delimiter string
		info      bool
	)
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the sorted and filtered table as aligned text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len([]rune(delimiter)) != 1 {
				return fmt.Errorf("--delimiter must be a single character, got %q", delimiter)
			}
			table, err := a.openTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if info {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), table); err != nil {
					return err
				}
			}
			writer := csvtable.NewWriter().
				WithHeaderRow(true).
				WithPadding(csvtable.AlignLeft).
				WithDelimiter([]rune(delimiter)[0]).
				WithNewLine("\n")
			return writer.WriteTable(cmd.Context(), cmd.OutOrStdout(), table)
		},
	}
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "|", "column delimiter")
	cmd.Flags().BoolVar(&info, "info", false, "print the table remap state before the rows")
	return cmd
}
