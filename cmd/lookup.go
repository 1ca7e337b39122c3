package cmd

import (
	statusadapter "github.com/bnema/rxscan/internal/adapters/render/status"
	"github.com/bnema/rxscan/internal/application"
	"github.com/spf13/cobra"
)

func newLookupCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <barcode>",
		Short: "Show catalog details for one barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			barcodes, err := parseBarcodes(args)
			if err != nil {
				return err
			}

			var result application.LookupResult
			if asJSON {
				result, err = app.service.Lookup(cmd.Context(), barcodes[0])
			} else {
				result, err = runLookupSpinner(cmd.Context(), cmd.ErrOrStderr(), barcodes[0], app.service.Lookup)
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, result, func() string {
				return statusadapter.RenderLookup(result)
			}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
