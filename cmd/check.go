package cmd

import (
	"errors"

	statusadapter "github.com/bnema/rxscan/internal/adapters/render/status"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <barcode>...",
		Short: "Check medicines for interactions shared by all of them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			barcodes, err := parseBarcodes(args)
			if err != nil {
				return err
			}

			report, err := app.service.Check(cmd.Context(), barcodes)
			if err != nil {
				return err
			}

			for _, lookupErr := range report.LookupErrors {
				app.logger.Warn().Msg(lookupErr)
			}

			return writeOutput(cmd, report, func() string {
				return statusadapter.RenderReport(report)
			}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func parseBarcodes(args []string) ([]domain.Barcode, error) {
	barcodes := make([]domain.Barcode, 0, len(args))
	for _, arg := range args {
		barcode := domain.NormalizeBarcode(arg)
		if barcode == "" {
			return nil, errors.New("barcode must not be empty")
		}
		barcodes = append(barcodes, barcode)
	}
	return barcodes, nil
}
