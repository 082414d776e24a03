package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxtable/internal/table"
)

func newStylesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Preview every border style side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := renderStylePreviews()
			if err != nil {
				return newCommandError("styles", "rendering previews", err, "Report this as a bug.")
			}
			rootFlags.log.Debug("rendered style previews", "styles", len(table.StyleIDs()))
			fmt.Fprintln(cmd.OutOrStdout(), preview)
			return nil
		},
	}

	return cmd
}

func renderStylePreviews() (string, error) {
	ids := table.StyleIDs()
	blocks := make([]string, 0, len(ids)*2)
	for i, id := range ids {
		tbl, err := sampleTable(id)
		if err != nil {
			return "", err
		}
		if i > 0 {
			blocks = append(blocks, "  ")
		}
		blocks = append(blocks, string(id)+"\n"+strings.TrimSuffix(tbl.String(), "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...), nil
}
