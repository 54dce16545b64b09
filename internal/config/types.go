package config

import "time"

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel      string       `yaml:"log_level" mapstructure:"log_level"`
	LogFile       string       `yaml:"log_file" mapstructure:"log_file"`
	LogMaxSizeMB  int          `yaml:"log_max_size_mb" mapstructure:"log_max_size_mb"`
	LogMaxBackups int          `yaml:"log_max_backups" mapstructure:"log_max_backups"`
	MetricsFile   string       `yaml:"metrics_textfile" mapstructure:"metrics_textfile"` // empty = disabled
	Slurm         SlurmConfig  `yaml:"slurm" mapstructure:"slurm"`
	Script        OutputConfig `yaml:"script" mapstructure:"script"`
	Input         OutputConfig `yaml:"input" mapstructure:"input"`
}

// SlurmConfig holds job submission settings.
type SlurmConfig struct {
	SbatchBin     string `yaml:"sbatch_bin" mapstructure:"sbatch_bin"`
	SubmitTimeout int    `yaml:"submit_timeout" mapstructure:"submit_timeout"` // seconds, 0 = none
}

// Timeout returns the submission timeout as a duration. Zero means no timeout.
func (c SlurmConfig) Timeout() time.Duration {
	return time.Duration(c.SubmitTimeout) * time.Second
}

// OutputConfig holds the default output path for a generated file.
type OutputConfig struct {
	Output string `yaml:"output" mapstructure:"output"`
}
