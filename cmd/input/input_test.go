package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/mdbatch/internal/lammps"
	"github.com/leefowlercu/mdbatch/internal/testutil"
)

func createTestCommand() *cobra.Command {
	inputOutput = ""

	cmd := &cobra.Command{
		Use:     InputCmd.Use,
		Args:    InputCmd.Args,
		PreRunE: InputCmd.PreRunE,
		RunE:    InputCmd.RunE,
	}
	RegisterFlags(cmd)
	return cmd
}

func TestInputCmd_WritesDefaultPath(t *testing.T) {
	env := testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"conf.sw"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("input command failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(env.WorkDir, lammps.DefaultInputPath))
	if err != nil {
		t.Fatalf("input not written: %v", err)
	}

	want, _ := lammps.RenderInput("conf.sw")
	if string(data) != want {
		t.Errorf("input content mismatch")
	}
	if got := stdout.String(); got != "LAMMPS input file generated: lammps.in\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestInputCmd_OutputFlag(t *testing.T) {
	env := testutil.NewTestEnv(t)
	out := filepath.Join(env.WorkDir, "vacancy.in")

	cmd := createTestCommand()
	cmd.SetArgs([]string{"vacancy.data", "--output", out})
	cmd.SetOut(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("input command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("input not written: %v", err)
	}
	if !strings.Contains(string(data), "read_data   vacancy.data\n") {
		t.Errorf("read_data line missing:\n%s", data)
	}
}

func TestInputCmd_RequiresDataFile(t *testing.T) {
	testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("expected error without data file argument")
	}
}
