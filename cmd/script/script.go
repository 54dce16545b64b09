// Package script implements the script command for writing SLURM batch scripts.
package script

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/mdbatch/internal/cmdutil"
	"github.com/leefowlercu/mdbatch/internal/metrics"
	"github.com/leefowlercu/mdbatch/internal/slurm"
)

// Flag variables for the script command.
var (
	scriptTime      string
	scriptNumTasks  int
	scriptNumCores  int
	scriptMemPerCPU string
	scriptOutput    string
)

// ScriptCmd writes a SLURM batch script for the LAMMPS run.
var ScriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Write a SLURM batch script",
	Long: "Write a SLURM batch script.\n\n" +
		"Generates a batch script that requests the given task count, memory per CPU, " +
		"and time limit, loads the cluster modules, and launches lmp_mpi on lammps.in. " +
		"Values are written as given without validation. An existing file at the " +
		"output path is overwritten.\n\n" +
		"The core count only fills the commented-out mpirun alternative; the active " +
		"launch line always uses srun.",
	Example: `  # Four tasks, 8G per CPU, 90 minutes
  mdbatch script --time 0-01:30:00 --ntasks 4 --ncores 40 --mem-per-cpu 8G

  # Write to a custom path
  mdbatch script --time 0-00:15:00 --ntasks 1 --ncores 1 --mem-per-cpu 4G -o my_job.sh`,
	Args:    cobra.NoArgs,
	PreRunE: validateScript,
	RunE:    runScript,
}

func init() {
	RegisterFlags(ScriptCmd)
}

// RegisterFlags attaches the script flags to cmd.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scriptTime, "time", "", "Time limit as days-hours:minutes:seconds (e.g. 0-01:30:00)")
	cmd.Flags().IntVar(&scriptNumTasks, "ntasks", 0, "Number of tasks (--ntasks)")
	cmd.Flags().IntVar(&scriptNumCores, "ncores", 0, "Number of cores for the commented-out mpirun line")
	cmd.Flags().StringVar(&scriptMemPerCPU, "mem-per-cpu", "", "Memory per CPU (e.g. 8G)")
	cmd.Flags().StringVarP(&scriptOutput, "output", "o", "", "Output path (default from config, else script_job.sh)")

	for _, name := range []string{"time", "ntasks", "ncores", "mem-per-cpu"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func validateScript(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	path := cmdutil.OutputPath(scriptOutput, "script.output", slurm.DefaultJobScriptPath)

	spec := slurm.JobSpec{
		Time:      scriptTime,
		NumTasks:  scriptNumTasks,
		NumCores:  scriptNumCores,
		MemPerCPU: scriptMemPerCPU,
	}

	if err := slurm.WriteJobScript(spec, path); err != nil {
		return err
	}
	metrics.RecordFileGenerated("script")

	slog.Debug("job script written",
		"path", path,
		"time", spec.Time,
		"ntasks", spec.NumTasks,
		"ncores", spec.NumCores,
		"mem_per_cpu", spec.MemPerCPU)

	fmt.Fprintf(cmd.OutOrStdout(), "File %s successfully generated.\n", path)
	return nil
}
