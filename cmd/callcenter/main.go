package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/travelease/callcenter/internal/interfaces/cli/migrate"
	"github.com/travelease/callcenter/internal/interfaces/cli/server"
	"github.com/travelease/callcenter/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "callcenter",
		Short:        "TravelEase call center backend",
		Long:         `Call center API for queueing customer calls, managing agents, bookings and notes.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
