package slurm

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output pipes to close once the
// command has been killed.
const waitDelay = 2 * time.Second

// CommandExecutor abstracts process execution for testability.
type CommandExecutor interface {
	// Run executes name with args and returns its stdout and stderr separately.
	// A non-zero exit is reported as an *exec.ExitError.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// defaultExecutor implements CommandExecutor using os/exec.
// Cancelling ctx kills the command's whole process group, so site wrappers
// around sbatch do not outlive a timeout.
type defaultExecutor struct{}

func (e *defaultExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// NewCommandExecutor returns the default os/exec backed executor.
func NewCommandExecutor() CommandExecutor {
	return &defaultExecutor{}
}
