package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxtable/internal/table"
)

func newDemoCmd(rootFlags *rootFlags) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a sample table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnUnknownStyle(rootFlags.log, style)

			tbl, err := sampleTable(table.StyleID(style), table.WithLogger(rootFlags.log))
			if err != nil {
				return newCommandError("demo", "building sample table", err, "Report this as a bug.")
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", string(table.StyleBold), "Border style (light, bold, double)")

	return cmd
}

// sampleTable builds the table shown by demo and styles. The empty cells
// exercise the placeholder and the padded header exercises trimming.
func sampleTable(id table.StyleID, opts ...table.Option) (*table.Table, error) {
	tbl := table.New(id, opts...)
	if err := tbl.SetHeaders("ID", "Name", " w", "City"); err != nil {
		return nil, err
	}

	rows := [][]string{
		{"1", "Giuseppe", "24", ""},
		{"2", "Younes", "", "Los Angeles"},
		{"3", "Charlie", "35", "Chicago"},
	}
	for _, row := range rows {
		if err := tbl.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
