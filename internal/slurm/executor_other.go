//go:build !unix

package slurm

import "os/exec"

// setProcessGroup is a no-op where process groups are unavailable;
// WaitDelay still bounds the wait after the leader is killed.
func setProcessGroup(cmd *exec.Cmd) {}
