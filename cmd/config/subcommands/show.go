package subcommands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/mdbatch/internal/config"
)

var (
	showRaw bool
)

// ShowCmd displays the current configuration.
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Long: "Display the current configuration.\n\n" +
		"By default, shows the effective configuration with defaults and " +
		"environment overrides applied. Use --raw to show the config file as written.",
	Example: `  # Show effective configuration
  mdbatch config show

  # Show only the config file contents
  mdbatch config show --raw`,
	PreRunE: validateShow,
	RunE:    runShow,
}

func init() {
	ShowCmd.Flags().BoolVar(&showRaw, "raw", false, "Show only the config file contents (no defaults)")
}

func validateShow(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := config.GetConfigPath()

	if showRaw {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(out, "# No configuration file found")
				fmt.Fprintf(out, "# Default location: %s\n", configPath)
				return nil
			}
			return fmt.Errorf("failed to read config file; %w", err)
		}

		fmt.Fprintf(out, "# Configuration file: %s\n", configPath)
		fmt.Fprintln(out, string(data))
		return nil
	}

	data, err := yaml.Marshal(config.Get())
	if err != nil {
		return fmt.Errorf("failed to format configuration; %w", err)
	}

	fmt.Fprintln(out, "# Effective configuration (with defaults)")
	fmt.Fprintf(out, "# Config file: %s\n", configPath)
	fmt.Fprintln(out, string(data))
	return nil
}
