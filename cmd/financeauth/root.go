package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the financeauth CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "financeauth",
		Short: "FinanceAssistant sign-in / sign-up client and authentication server",
		Long: `financeauth drives the FinanceAssistant authentication form from the terminal
(login, register, demo), prints the saved identity (whoami) and runs the authentication server it talks to (serve).

Client settings come from AUTH_API_BASE_URL, AUTH_HTTP_TIMEOUT, AUTH_NAVIGATE_DELAY,
AUTH_DESTINATION, IDENTITY_STORE and IDENTITY_FILE.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newWhoamiCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
