package main

import (
	"github.com/spf13/cobra"
)

var globalFlags struct {
	apiURL      string
	token       string
	userID      string
	email       string
	displayName string
}

var rootCmd = &cobra.Command{
	Use:   "raahi-panic",
	Short: "Device agent for raising RAAHI panic alerts",
	Long: `Raise a panic alert the way a tourist device does: a cancellable
countdown, a bounded location fix, the alert POST and the emergency call.

Examples:
  raahi-panic trigger --lat 28.6562 --lng 77.2410
  raahi-panic trigger --no-location --now --dial-cmd "echo dialing"
  raahi-panic token --user-id op-1 --role operator`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalFlags.apiURL, "api", "http://localhost:8080", "RAAHI API base URL")
	flags.StringVar(&globalFlags.token, "token", "", "bearer token; empty raises the alert anonymously")
	flags.StringVar(&globalFlags.userID, "user-id", "", "owner id for anonymous alerts")
	flags.StringVar(&globalFlags.email, "email", "", "contact email sent with the alert")
	flags.StringVar(&globalFlags.displayName, "name", "", "display name sent with the alert")

	rootCmd.AddCommand(triggerCmd, tokenCmd)
}
