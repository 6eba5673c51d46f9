package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/authflow-cli/internal/application"
	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

// oauth2Record is the wire shape of golang.org/x/oauth2 plus the OpenID
// Connect id_token, which oauth2.Token only carries as an unmarshaled extra.
type oauth2Record struct {
	oauth2.Token
	IDToken string `json:"id_token,omitempty"`
}

func newTokenCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the stored access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTokenExport(cmd, app, application.ExportFormat(format))
		},
	}

	cmd.Flags().StringVar(&format, "format", string(application.ExportFormatText), "Output format: text, json or oauth2")

	return cmd
}

func runTokenExport(cmd *cobra.Command, app *app, format application.ExportFormat) error {
	if !format.Valid() {
		return fmt.Errorf("unknown token format %q (valid: text, json, oauth2)", format)
	}

	auth, err := app.service.ExportToken(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return errors.New("no session is stored; run `af login` first")
		}
		return err
	}

	switch format {
	case application.ExportFormatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(auth)
	case application.ExportFormatOAuth2:
		record := oauth2Record{
			Token: oauth2.Token{
				AccessToken:  auth.AccessToken,
				TokenType:    "Bearer",
				RefreshToken: auth.RefreshToken,
				Expiry:       app.now().Add(time.Duration(auth.ExpiresIn) * time.Second),
			},
			IDToken: auth.IDToken,
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), auth.AccessToken)
		return err
	}
}
