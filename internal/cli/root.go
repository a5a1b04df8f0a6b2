package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const defaultConfigPath = "config.toml"

// NewRootCmd корневая команда billiardctl
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "billiardctl",
		Short:         "Billiard table booking service: availability engine, reservations and schedule administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to TOML config")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newSlotsCmd(&configPath))
	root.AddCommand(newBootstrapCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute запускает CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
