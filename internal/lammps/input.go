// Package lammps renders the LAMMPS input script for an MLIP + ARTn minimization.
package lammps

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

// DefaultInputPath is used when WriteInput is given an empty path.
const DefaultInputPath = "lammps.in"

//go:embed templates/lammps.in.tmpl
var templates embed.FS

var inputTmpl = template.Must(template.ParseFS(templates, "templates/lammps.in.tmpl"))

type inputData struct {
	DataFile string
}

// RenderInput returns the input script with dataFile as the read_data argument.
// The rest of the script is fixed.
func RenderInput(dataFile string) (string, error) {
	var buf bytes.Buffer
	if err := inputTmpl.Execute(&buf, inputData{DataFile: dataFile}); err != nil {
		return "", fmt.Errorf("failed to render lammps input; %w", err)
	}
	return buf.String(), nil
}

// WriteInput renders the input script and writes it to path, replacing any existing file.
func WriteInput(dataFile, path string) error {
	if path == "" {
		path = DefaultInputPath
	}

	content, err := RenderInput(dataFile)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write lammps input %s; %w", path, err)
	}

	return nil
}
