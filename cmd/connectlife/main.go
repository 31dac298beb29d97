// Connectlife is a command line client for the ConnectLife smart home
// cloud.
//
// It authenticates against the vendor's OAuth2 gateway, then lists,
// inspects, and controls the appliances bound to the account.
//
// Usage:
//
//	connectlife [command] [flags]
//
// The common operations are also reachable through root flags:
//
//	connectlife --list-devices
//	connectlife --device <PUID> --status
//	connectlife --device <PUID> --set-property t_power=1
//
// See 'connectlife --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"connectlife/internal/logging"
	"connectlife/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectlife",
	Short: "ConnectLife Smart Home CLI",
	Long: `A command line client for the ConnectLife smart home cloud.

Authenticates against the vendor's OAuth2 gateway and lists, inspects,
and controls the appliances bound to your account. Credentials are
cached in a local token file and refreshed automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("connectlife %s\n", version.Full())
	},
}
