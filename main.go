package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-calendar/cmd"
	"github.com/mattsolo1/grove-calendar/cmd/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gcal",
		Short: "A vault-backed calendar with draft-based event and source editors",
		Long: `gcal manages calendar events stored as notes in a vault, alongside
remote CalDAV, iCloud, and .ics calendar sources.`,
		SilenceUsage: true,
	}

	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// This runs once before any subcommand
		config.InitConfig()
		config.InitLogger()
	}

	rootCmd.AddCommand(cmd.NewSettingsCmd())
	rootCmd.AddCommand(cmd.NewEventCmd())
	rootCmd.AddCommand(cmd.NewSourceCmd())
	rootCmd.AddCommand(cmd.NewOpenCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
