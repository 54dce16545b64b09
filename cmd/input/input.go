// Package input implements the input command for writing LAMMPS input scripts.
package input

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/mdbatch/internal/cmdutil"
	"github.com/leefowlercu/mdbatch/internal/lammps"
	"github.com/leefowlercu/mdbatch/internal/metrics"
)

var inputOutput string

// InputCmd writes the LAMMPS input script.
var InputCmd = &cobra.Command{
	Use:   "input <data-file>",
	Short: "Write a LAMMPS input script",
	Long: "Write a LAMMPS input script.\n\n" +
		"Generates the MLIP + ARTn minimization input with <data-file> as the " +
		"read_data argument. Everything else in the script is fixed. The data file " +
		"is not opened or checked. An existing file at the output path is overwritten.",
	Example: `  # Write lammps.in reading conf.sw
  mdbatch input conf.sw

  # Write to a custom path
  mdbatch input conf.sw -o vacancy.in`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateInput,
	RunE:    runInput,
}

func init() {
	RegisterFlags(InputCmd)
}

// RegisterFlags attaches the input flags to cmd.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputOutput, "output", "o", "", "Output path (default from config, else lammps.in)")
}

func validateInput(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runInput(cmd *cobra.Command, args []string) error {
	dataFile := args[0]
	path := cmdutil.OutputPath(inputOutput, "input.output", lammps.DefaultInputPath)

	if err := lammps.WriteInput(dataFile, path); err != nil {
		return err
	}
	metrics.RecordFileGenerated("input")

	slog.Debug("lammps input written", "path", path, "data_file", dataFile)

	fmt.Fprintf(cmd.OutOrStdout(), "LAMMPS input file generated: %s\n", path)
	return nil
}
