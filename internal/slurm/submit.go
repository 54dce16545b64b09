package slurm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/leefowlercu/mdbatch/internal/config"
	"github.com/leefowlercu/mdbatch/internal/metrics"
)

// DefaultBinary is the submission command used when none is configured.
const DefaultBinary = "sbatch"

// dependencyFlag is passed as its own argument, followed by the job ID.
const dependencyFlag = "--dependency=afterok"

// Submitter runs the submission command against a batch script.
type Submitter struct {
	binary   string
	timeout  time.Duration
	executor CommandExecutor
	logger   *slog.Logger
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithBinary sets the submission command name or path.
func WithBinary(binary string) Option {
	return func(s *Submitter) {
		if binary != "" {
			s.binary = binary
		}
	}
}

// WithTimeout bounds each submission. Zero leaves it unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Submitter) {
		s.timeout = timeout
	}
}

// WithExecutor replaces the process executor.
func WithExecutor(executor CommandExecutor) Option {
	return func(s *Submitter) {
		if executor != nil {
			s.executor = executor
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Submitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSubmitter creates a Submitter that runs sbatch from PATH by default.
func NewSubmitter(opts ...Option) *Submitter {
	s := &Submitter{
		binary:   DefaultBinary,
		executor: NewCommandExecutor(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewSubmitterFromConfig creates a Submitter from the slurm config section.
// Explicit options are applied after the config values.
func NewSubmitterFromConfig(cfg config.SlurmConfig, opts ...Option) *Submitter {
	base := []Option{WithBinary(cfg.SbatchBin), WithTimeout(cfg.Timeout())}
	return NewSubmitter(append(base, opts...)...)
}

// Args returns the submission arguments for scriptPath. A non-empty
// dependency adds "--dependency=afterok" and the ID ahead of the script.
func (s *Submitter) Args(scriptPath, dependency string) []string {
	args := make([]string, 0, 3)
	if dependency != "" {
		args = append(args, dependencyFlag, dependency)
	}
	return append(args, scriptPath)
}

// Submit marks scriptPath executable, submits it, and returns the new job ID.
//
// Errors fall into three groups: ErrScriptNotFound when the script is missing
// (no process is started), *SubmissionError when the command exits non-zero,
// and a wrapped error for anything else.
func (s *Submitter) Submit(ctx context.Context, scriptPath, dependency string) (string, error) {
	start := time.Now()
	jobID, err := s.submit(ctx, scriptPath, dependency)
	metrics.RecordSubmission(time.Since(start), failureReason(err))
	return jobID, err
}

func (s *Submitter) submit(ctx context.Context, scriptPath, dependency string) (string, error) {
	info, err := os.Stat(scriptPath)
	if err != nil || !info.Mode().IsRegular() {
		s.logger.Error("script does not exist", "script", scriptPath)
		return "", fmt.Errorf("failed to submit %s; %w", scriptPath, ErrScriptNotFound)
	}

	if err := os.Chmod(scriptPath, 0755); err != nil {
		s.logger.Error("unexpected submission error", "script", scriptPath, "error", err)
		return "", fmt.Errorf("failed to make %s executable; %w", scriptPath, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args := s.Args(scriptPath, dependency)
	s.logger.Debug("submitting job", "command", s.binary, "args", args)

	stdout, stderr, err := s.executor.Run(ctx, s.binary, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Error("unexpected submission error", "script", scriptPath, "error", ctxErr)
			return "", fmt.Errorf("submission of %s interrupted; %w", scriptPath, ctxErr)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			s.logger.Error("job submission error", "script", scriptPath, "stderr", string(stderr))
			return "", &SubmissionError{Script: scriptPath, Stderr: string(stderr), Err: err}
		}

		s.logger.Error("unexpected submission error", "script", scriptPath, "error", err)
		return "", fmt.Errorf("failed to run %s; %w", s.binary, err)
	}

	jobID, err := ParseJobID(stdout)
	if err != nil {
		s.logger.Error("unexpected submission error", "script", scriptPath, "error", err)
		return "", err
	}

	s.logger.Info("job submitted", "job_id", jobID, "script", scriptPath, "dependency", dependency)
	return jobID, nil
}

// SubmitChain submits scripts in order, each depending on the job before it.
// The first script depends on dependency when it is non-empty. Submission
// stops at the first failure; the IDs submitted so far are returned with the error.
func (s *Submitter) SubmitChain(ctx context.Context, scripts []string, dependency string) ([]string, error) {
	ids := make([]string, 0, len(scripts))
	prev := dependency

	for _, script := range scripts {
		id, err := s.Submit(ctx, script, prev)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
		prev = id
	}

	return ids, nil
}

// ParseJobID returns the last whitespace-delimited token of sbatch output,
// e.g. "42" from "Submitted batch job 42".
func ParseJobID(stdout []byte) (string, error) {
	fields := strings.Fields(string(stdout))
	if len(fields) == 0 {
		return "", ErrNoJobID
	}
	return fields[len(fields)-1], nil
}

// failureReason maps a Submit error to its metrics label.
func failureReason(err error) string {
	var subErr *SubmissionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrScriptNotFound):
		return metrics.ReasonScriptNotFound
	case errors.As(err, &subErr):
		return metrics.ReasonExitStatus
	case errors.Is(err, ErrNoJobID):
		return metrics.ReasonNoJobID
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ReasonInterrupted
	default:
		return metrics.ReasonExec
	}
}
