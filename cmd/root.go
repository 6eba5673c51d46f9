package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		verbose      bool
		storeBackend string
	)

	rootCmd := &cobra.Command{
		Use:           "af",
		Short:         "Authflow CLI (af): browser sign-in with PKCE for terminal sessions",
		Long:          "af drives the OAuth2 authorization code flow with PKCE from the terminal: it sends the browser to the provider's consent page, captures the return redirect on a loopback address, exchanges the code for tokens, and keeps the session in a local store.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", app.backend, "Session store backend (auto, toml, keyring or pass)")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if storeBackend != app.backend {
			return app.useSessionBackend(storeBackend)
		}
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newStatusCmd(app),
		newLogoutCmd(app),
		newTokenCmd(app),
	)

	return rootCmd
}
