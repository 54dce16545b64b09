// Package submit implements the submit command for queueing batch scripts.
package submit

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/mdbatch/internal/config"
	"github.com/leefowlercu/mdbatch/internal/slurm"
)

var (
	submitDependency string
	submitQuiet      bool
)

// SubmitCmd submits one script, or a chain of scripts, with sbatch.
var SubmitCmd = &cobra.Command{
	Use:   "submit <script> [script...]",
	Short: "Submit batch scripts to SLURM",
	Long: "Submit batch scripts to SLURM.\n\n" +
		"Each script is made executable and passed to sbatch. The job ID is taken " +
		"from the last word of sbatch's output. With --dependency, the first job " +
		"starts only after that job completes successfully (afterok).\n\n" +
		"When several scripts are given they form a chain: every job after the " +
		"first depends on the one before it. Submission stops at the first failure.",
	Example: `  # Submit a single script
  mdbatch submit script_job.sh

  # Run after job 123456 completes successfully
  mdbatch submit script_job.sh --dependency 123456

  # Chain three jobs and print only their IDs
  mdbatch submit relax.sh artn.sh analyze.sh -q`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateSubmit,
	RunE:    runSubmit,
}

func init() {
	RegisterFlags(SubmitCmd)
}

// RegisterFlags attaches the submit flags to cmd.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&submitDependency, "dependency", "d", "", "Job ID the first job must wait for (afterok)")
	cmd.Flags().BoolVarP(&submitQuiet, "quiet", "q", false, "Print only job IDs, one per line")
}

func validateSubmit(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	submitter := slurm.NewSubmitterFromConfig(cfg.Slurm, slurm.WithLogger(slog.Default()))

	ids, err := submitter.SubmitChain(cmd.Context(), args, submitDependency)
	for i, id := range ids {
		if submitQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), id)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Job submitted successfully. Script: %s ID: %s\n", args[i], id)
	}

	if err != nil {
		if len(args) > 1 {
			return fmt.Errorf("submitted %d of %d jobs; %w", len(ids), len(args), err)
		}
		return err
	}

	return nil
}
