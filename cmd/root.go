package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	configcmd "github.com/leefowlercu/mdbatch/cmd/config"
	"github.com/leefowlercu/mdbatch/cmd/input"
	"github.com/leefowlercu/mdbatch/cmd/script"
	"github.com/leefowlercu/mdbatch/cmd/submit"
	versioncmd "github.com/leefowlercu/mdbatch/cmd/version"
	"github.com/leefowlercu/mdbatch/internal/config"
	"github.com/leefowlercu/mdbatch/internal/logging"
	"github.com/leefowlercu/mdbatch/internal/metrics"
	"github.com/leefowlercu/mdbatch/internal/version"
)

// logManager is the global logging manager, created in init() and upgraded after config loads
var logManager *logging.Manager

var mdbatchCmd = &cobra.Command{
	Use:   "mdbatch",
	Short: "Prepare and submit LAMMPS batch jobs on SLURM clusters",
	Long: "mdbatch writes the files a LAMMPS + MLIP + ARTn run needs on a SLURM cluster " +
		"and submits them.\n\n" +
		"The script command writes the sbatch submission script, the input command writes " +
		"the LAMMPS input file, and the submit command queues scripts with sbatch, optionally " +
		"chaining them with afterok dependencies.",
	Version:           version.Version(),
	PersistentPreRunE: runInitialize,
}

func init() {
	logManager = logging.NewManager()
	slog.SetDefault(logManager.Logger())

	mdbatchCmd.AddCommand(script.ScriptCmd)
	mdbatchCmd.AddCommand(input.InputCmd)
	mdbatchCmd.AddCommand(submit.SubmitCmd)
	mdbatchCmd.AddCommand(configcmd.ConfigCmd)
	mdbatchCmd.AddCommand(versioncmd.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		// config subcommands must still run so a broken file can be inspected and replaced
		if !isConfigCommand(cmd) {
			return fmt.Errorf("invalid configuration in %s; %w", config.GetConfigPath(), err)
		}
		logger.Warn("configuration is invalid", "error", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("invalid log level configured, using default", "configured", cfg.LogLevel, "default", logging.DefaultLevel)
	}

	opts := logging.FileOptions{
		Path:       config.ExpandPath(cfg.LogFile),
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}
	if err := logManager.Upgrade(opts, level); err != nil {
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
	}

	slog.SetDefault(logger.With("run_id", uuid.NewString(), "command", cmd.Name()))

	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configcmd.ConfigCmd {
			return true
		}
	}
	return false
}

// flushMetrics writes the metrics textfile when one is configured.
func flushMetrics() {
	path := config.GetString("metrics_textfile")
	if path == "" {
		return
	}

	if err := metrics.WriteTextfile(config.ExpandPath(path)); err != nil {
		slog.Warn("failed to write metrics textfile", "path", path, "error", err)
	}
}

// Execute runs the root command.
func Execute() error {
	mdbatchCmd.SilenceErrors = true
	mdbatchCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	cmd, err := mdbatchCmd.ExecuteC()
	flushMetrics()

	if err != nil {
		if cmd == nil {
			cmd = mdbatchCmd
		}

		fmt.Printf("Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Printf("\n")
			cmd.SetOut(os.Stdout)
			_ = cmd.Usage()
		}

		return err
	}

	return nil
}
