package config

import (
	"fmt"
	"strings"

	"github.com/leefowlercu/mdbatch/internal/logging"
)

// ValidationError represents a config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString("config validation failed:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// Validate checks the configuration for errors.
// Returns ValidationErrors if validation fails.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.LogLevel),
		})
	}

	if cfg.LogFile == "" {
		errs = append(errs, ValidationError{
			Field:   "log_file",
			Message: "must not be empty",
		})
	}

	if cfg.LogMaxSizeMB < 1 {
		errs = append(errs, ValidationError{
			Field:   "log_max_size_mb",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.LogMaxSizeMB),
		})
	}

	if cfg.LogMaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_max_backups",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LogMaxBackups),
		})
	}

	if cfg.Slurm.SbatchBin == "" {
		errs = append(errs, ValidationError{
			Field:   "slurm.sbatch_bin",
			Message: "must not be empty",
		})
	}

	if cfg.Slurm.SubmitTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "slurm.submit_timeout",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.Slurm.SubmitTimeout),
		})
	}

	if cfg.Script.Output == "" {
		errs = append(errs, ValidationError{
			Field:   "script.output",
			Message: "must not be empty",
		})
	}

	if cfg.Input.Output == "" {
		errs = append(errs, ValidationError{
			Field:   "input.output",
			Message: "must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
