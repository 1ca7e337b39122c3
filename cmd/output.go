package cmd

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func writeOutput(cmd *cobra.Command, value any, render func() string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), render())
	return err
}
