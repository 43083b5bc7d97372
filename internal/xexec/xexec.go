// Package xexec wraps blocking child-process invocation.
package xexec

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Run executes a command and returns exit code, stdout, stderr, and error.
func Run(name string, args ...string) (int, string, string, error) {
	c := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	c.Stdout = &outBuf
	c.Stderr = &errBuf
	err := c.Run()
	exit := 0
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exit = ee.ExitCode()
		} else {
			exit = -1
		}
	}
	if err != nil && exit == -1 {
		// non-exit error (e.g., command not found)
		return exit, outBuf.String(), errBuf.String(), fmt.Errorf("exec error: %w", err)
	}
	// A nonzero exit is not an error here; the exit code carries it.
	return exit, outBuf.String(), errBuf.String(), nil
}

// Interactive executes a command with the operator's terminal attached and
// waits for it to exit. Used for the external text editor.
func Interactive(name string, args ...string) error {
	c := exec.Command(name, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
