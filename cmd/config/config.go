// Package config provides the config parent command and subcommands.
package config

import (
	"github.com/spf13/cobra"

	"github.com/leefowlercu/mdbatch/cmd/config/subcommands"
)

// ConfigCmd is the parent command for all config-related subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mdbatch configuration",
	Long: "Manage mdbatch configuration.\n\n" +
		"Configuration is stored in a YAML file located at " +
		"~/.config/mdbatch/config.yaml by default. Any key can be overridden " +
		"with an MDBATCH_ environment variable, e.g. MDBATCH_SLURM_SBATCH_BIN.",
}

func init() {
	ConfigCmd.AddCommand(subcommands.ShowCmd)
	ConfigCmd.AddCommand(subcommands.ValidateCmd)
	ConfigCmd.AddCommand(subcommands.InitCmd)
}
