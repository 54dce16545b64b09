package subcommands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/mdbatch/internal/config"
)

var (
	initForce bool
)

// InitCmd writes a config file populated with defaults.
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: "Write a default configuration file.\n\n" +
		"Creates ~/.config/mdbatch/config.yaml (or the file under $MDBATCH_CONFIG_DIR) " +
		"containing every setting at its default value. An existing file is left " +
		"alone unless --force is given.",
	Example: `  # Create the config file
  mdbatch config init

  # Replace an existing config file with defaults
  mdbatch config init --force`,
	PreRunE: validateInit,
	RunE:    runInit,
}

func init() {
	InitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func validateInit(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.GetConfigPath()

	if config.ConfigExistsAt(path) && !initForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists: %s (use --force to overwrite)\n", path)
		return nil
	}

	cfg := config.NewDefaultConfig()
	if err := config.Write(&cfg, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written: %s\n", path)
	return nil
}
