package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/rxscan/internal/adapters/capture/wedge"
	statusadapter "github.com/bnema/rxscan/internal/adapters/render/status"
	"github.com/bnema/rxscan/internal/application"
	"github.com/spf13/cobra"
)

func newScanCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run a scanning session from a keyboard-wedge scanner",
		Long: `Read one barcode per line from stdin and resolve each against the catalog.

Lines starting with ":" are session commands:
  :start  start scanning
  :stop   stop scanning and discard the session
  :next   discard the session and keep scanning for the next patient`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			controller := application.NewController(app.debounce, app.clock)
			renderer := statusadapter.NewRenderer(cmd.OutOrStdout(), app.clock, statusadapter.RenderOptions{
				Bell: app.config.Render.Bell,
			})
			capture := wedge.NewReader(cmd.InOrStdin(), app.clock)

			app.logger.Debug().
				Str("catalog", app.config.Catalog.Source).
				Str("debounce", string(app.debounce.Mode)).
				Msg("Starting scan session")

			return application.NewLoop(controller, app.catalog, renderer, app.logger).Run(ctx, capture)
		},
	}
}
