package main

import (
	"os"

	"github.com/spf13/cobra"

	"silica/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "silica",
	Short: "Silica hardware elaboration engine",
	Long:  `Silica elaborates hardware design declarations into a symbol tree with diagnostics`,
}

// main wires up the subcommands and global flags, then executes the root
// command. A command error exits with status code 1.
func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(elaborateCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to silica.toml")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to collect")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
