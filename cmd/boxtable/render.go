package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/boxtable/internal/document"
	"github.com/alexisbeaulieu97/boxtable/internal/logger"
	"github.com/alexisbeaulieu97/boxtable/internal/table"
)

type renderOptions struct {
	file  string
	style string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a table described in a YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRender(cmd, rootFlags.log, opts)
			if err != nil {
				rootFlags.log.Error(err, "render command failed", "file", opts.file)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the table document")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Border style override (light, bold, double)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runRender(cmd *cobra.Command, log *logger.Logger, opts *renderOptions) error {
	if strings.TrimSpace(opts.file) == "" {
		return newCommandError("render", "reading table document", fmt.Errorf("document path is required"), "Pass the document with --file.")
	}

	doc, err := document.Load(opts.file)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("loading %q", opts.file), err, "Check that the file exists and declares a non-empty headers list.")
	}

	if opts.style != "" {
		warnUnknownStyle(log, opts.style)
		doc.Style = opts.style
	}

	tbl, err := doc.Build(table.WithLogger(log))
	if err != nil {
		return newCommandError("render", fmt.Sprintf("building table from %q", opts.file), err, "Headers must be non-blank and unique ignoring case.")
	}

	out, err := tbl.Render()
	if err != nil {
		return newCommandError("render", "rendering table", err, "Report this as a bug.")
	}

	warnIfTooWide(log, cmd.OutOrStdout(), out)
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func warnUnknownStyle(log *logger.Logger, style string) {
	if table.IsKnownStyle(table.StyleID(style)) {
		return
	}
	log.Warn("unknown style, using light", "style", style)
}

// warnIfTooWide logs when the table will wrap in the terminal it is written
// to. Non-terminal writers are never checked.
func warnIfTooWide(log *logger.Logger, writer any, rendered string) {
	width, ok := terminalWidth(writer)
	if !ok {
		return
	}
	first, _, _ := strings.Cut(rendered, "\n")
	if n := utf8.RuneCountInString(first); n > width {
		log.Warn("table is wider than the terminal", "table_width", n, "terminal_width", width)
	}
}

func terminalWidth(writer any) (int, bool) {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
