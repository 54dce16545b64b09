// Package slurm writes SLURM batch scripts and submits them with sbatch.
package slurm

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

// DefaultJobScriptPath is used when WriteJobScript is given an empty path.
const DefaultJobScriptPath = "script_job.sh"

//go:embed templates/job.sh.tmpl
var templates embed.FS

var jobScriptTmpl = template.Must(template.ParseFS(templates, "templates/job.sh.tmpl"))

// JobSpec holds the values interpolated into the batch script. Nothing is
// validated; every field lands in the script as given.
type JobSpec struct {
	// Time is the wall-clock limit in days-hours:minutes:seconds form, e.g. "0-01:30:00".
	Time string

	// NumTasks is the --ntasks directive.
	NumTasks int

	// NumCores only appears in the commented-out mpirun line.
	NumCores int

	// MemPerCPU is the --mem-per-cpu directive, e.g. "8G".
	MemPerCPU string
}

// RenderJobScript returns the batch script text for spec.
func RenderJobScript(spec JobSpec) (string, error) {
	var buf bytes.Buffer
	if err := jobScriptTmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render job script; %w", err)
	}
	return buf.String(), nil
}

// WriteJobScript renders spec and writes it to path, replacing any existing file.
func WriteJobScript(spec JobSpec, path string) error {
	if path == "" {
		path = DefaultJobScriptPath
	}

	content, err := RenderJobScript(spec)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write job script %s; %w", path, err)
	}

	return nil
}
