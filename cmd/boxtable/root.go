package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxtable/internal/logger"
)

type rootFlags struct {
	verbose bool
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "boxtable",
		Short:         "Boxtable renders tables with box-drawing borders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			flags.log = log.WithFields(map[string]any{"command": cmd.Name()})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
