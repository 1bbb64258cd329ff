// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// execReplace emulates process replacement on Windows, which has no execve
// equivalent: the command runs as a child process with inherited stdio and
// the launcher exits with the child's exit code, so the shell still
// observes the command's own status.
func execReplace(argv0 string, argv []string, envv []string) error {
	cmd := exec.Command(argv0, argv[1:]...)
	cmd.Env = envv
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}

	os.Exit(0)
	return nil
}
