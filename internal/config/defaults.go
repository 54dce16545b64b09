package config

import "github.com/spf13/viper"

const (
	// AppName names the config directory and log file.
	AppName = "mdbatch"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "MDBATCH"

	// EnvConfigDir overrides the config search directory.
	EnvConfigDir = "MDBATCH_CONFIG_DIR"
)

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultLogFile       = "~/.config/mdbatch/mdbatch.log"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3

	DefaultMetricsTextfile = ""

	DefaultSlurmSbatchBin     = "sbatch"
	DefaultSlurmSubmitTimeout = 0 // seconds, 0 = wait indefinitely

	DefaultScriptOutput = "script_job.sh"
	DefaultInputOutput  = "lammps.in"
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() Config {
	return Config{
		LogLevel:      DefaultLogLevel,
		LogFile:       DefaultLogFile,
		LogMaxSizeMB:  DefaultLogMaxSizeMB,
		LogMaxBackups: DefaultLogMaxBackups,
		MetricsFile:   DefaultMetricsTextfile,
		Slurm: SlurmConfig{
			SbatchBin:     DefaultSlurmSbatchBin,
			SubmitTimeout: DefaultSlurmSubmitTimeout,
		},
		Script: OutputConfig{Output: DefaultScriptOutput},
		Input:  OutputConfig{Output: DefaultInputOutput},
	}
}

// setDefaults registers all default configuration values with the global viper.
// Called during Init() before reading config files.
func setDefaults() {
	setViperDefaults(viper.GetViper())
}

// setViperDefaults registers all default configuration values with a viper instance.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log_max_backups", DefaultLogMaxBackups)
	v.SetDefault("metrics_textfile", DefaultMetricsTextfile)

	v.SetDefault("slurm.sbatch_bin", DefaultSlurmSbatchBin)
	v.SetDefault("slurm.submit_timeout", DefaultSlurmSubmitTimeout)

	v.SetDefault("script.output", DefaultScriptOutput)
	v.SetDefault("input.output", DefaultInputOutput)
}
