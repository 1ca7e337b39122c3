package cmd

import "github.com/spf13/cobra"

const annotationSkipWiring = "rx/skip-wiring"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "rx",
		Short:         "Medicine scan sessions with shared-interaction checks",
		Long:          "rx reads medicine barcodes from a scanner, resolves them against a catalog, and flags interactions shared by every medicine scanned for the current patient.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipWiring] == "true" {
				return nil
			}

			wired, err := wireApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newScanCmd(app),
		newCheckCmd(app),
		newLookupCmd(app),
		newCatalogCmd(app),
	)

	return rootCmd
}
