package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.service.Status(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			rendered, err := app.statusRenderer(status)
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
