package slurm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrScriptNotFound is returned when the script to submit is not a regular file.
	ErrScriptNotFound = errors.New("script does not exist")

	// ErrNoJobID is returned when sbatch succeeds but prints nothing to parse.
	ErrNoJobID = errors.New("no job id in sbatch output")
)

// SubmissionError reports a submission command that exited non-zero.
type SubmissionError struct {
	Script string
	Stderr string
	Err    error
}

func (e *SubmissionError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("job submission error for %s: %s", e.Script, msg)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
