package cmd

import (
	"fmt"
	"path/filepath"

	filecatalog "github.com/bnema/rxscan/internal/adapters/catalog/file"
	tomlcatalog "github.com/bnema/rxscan/internal/adapters/catalog/toml"
	statusadapter "github.com/bnema/rxscan/internal/adapters/render/status"
	"github.com/bnema/rxscan/internal/config"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and convert medicine catalogs",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogImportCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List medicines in the configured catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.service.ListCatalog(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, records, func() string {
				return statusadapter.RenderCatalog(records)
			}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newCatalogImportCmd(app *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "import <medicines.json>",
		Short: "Import a medicines.json document into a TOML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := filecatalog.NewCatalog(args[0])
			if err != nil {
				return err
			}

			if target == "" {
				target = filepath.Join(config.Dir(app.homeDir), "medicines.toml")
			}
			dest, err := tomlcatalog.NewCatalog(target)
			if err != nil {
				return err
			}

			imported, err := app.service.ImportCatalog(cmd.Context(), source, dest)
			if err != nil {
				return err
			}

			app.logger.Info().Int("medicines", imported).Str("path", dest.Path()).Msg("Catalog imported")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d medicines into %s\n", imported, dest.Path())
			return err
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "TOML catalog to write (default ~/.rxscan/medicines.toml)")

	return cmd
}
