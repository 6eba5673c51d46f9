package cmd

import (
	"context"
	"fmt"
	"time"

	browseradapter "github.com/bnema/authflow-cli/internal/adapters/browser"
	"github.com/bnema/authflow-cli/internal/adapters/httpform"
	"github.com/bnema/authflow-cli/internal/adapters/loopback"
	"github.com/bnema/authflow-cli/internal/application"
	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		issuer    string
		clientID  string
		scope     string
		listen    string
		timeout   time.Duration
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in through the provider's consent page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loginConfig{
				Issuer:     issuer,
				ClientID:   clientID,
				Scope:      scope,
				ListenAddr: listen,
				Timeout:    timeout,
			}
			return runLogin(cmd, app, cfg, noBrowser)
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", app.login.Issuer, "Authorization server issuer URL")
	cmd.Flags().StringVar(&clientID, "client-id", app.login.ClientID, "OAuth client identifier")
	cmd.Flags().StringVar(&scope, "scope", app.login.Scope, "Requested scopes, space separated")
	cmd.Flags().StringVar(&listen, "listen", app.login.ListenAddr, "Loopback address for the return redirect")
	cmd.Flags().DurationVar(&timeout, "timeout", app.login.Timeout, "How long to wait for the provider to return")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Print the consent URL instead of opening a browser")

	return cmd
}

func runLogin(cmd *cobra.Command, app *app, cfg loginConfig, noBrowser bool) error {
	params := domain.FlowParams{
		Issuer:   cfg.Issuer,
		ClientID: cfg.ClientID,
		Scope:    cfg.Scope,
	}

	server, err := loopback.Start(cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("start loopback server: %w", err)
	}
	defer func() { _ = server.Close() }()

	var open browseradapter.OpenFunc
	if noBrowser {
		open = func(rawURL string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to sign in:\n%s\n", rawURL)
			return err
		}
	}
	agent := browseradapter.NewAgent(server.RedirectURI(), open)

	flow, err := application.NewFlowService(params, app.sessionStore, agent, httpform.NewPoster(app.httpClient), nil)
	if err != nil {
		return err
	}

	outcome, err := flow.Secure(cmd.Context())
	if err != nil {
		return fmt.Errorf("begin login: %w", err)
	}
	if outcome == application.OutcomeAuthenticated {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Already signed in.")
		return nil
	}

	// The browser is with the provider now; block until it comes back.
	var returned string
	err = runLoginWaitSpinner(cmd.Context(), cmd.ErrOrStderr(), func(context.Context) error {
		var waitErr error
		returned, waitErr = server.WaitForReturn(cfg.Timeout)
		return waitErr
	})
	if err != nil {
		return fmt.Errorf("wait for authorization return: %w", err)
	}

	agent.SetReturned(returned)

	if _, err := flow.Secure(cmd.Context()); err != nil {
		return fmt.Errorf("complete login: %w", err)
	}

	if auth, ok := flow.Authentication(); ok && auth.IDToken != "" {
		if identity, idErr := application.IdentityFromToken(auth.IDToken); idErr == nil && identity.Email != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", identity.Email)
			return nil
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed in.")
	return nil
}
