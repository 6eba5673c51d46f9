package cmd

import (
	"fmt"

	"github.com/bnema/authflow-cli/internal/application"
	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	var clearPending bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := application.LogoutOptions{ClearPending: clearPending}
			if err := app.service.Logout(cmd.Context(), opts); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearPending, "pending", false, "Also discard an unfinished login attempt")

	return cmd
}
