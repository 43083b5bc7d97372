// Package preflight verifies the host before any mode runs: the service
// manager must respond and the process must hold the privileges the
// requested operation needs.
package preflight

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"serviceconfig/internal/systemctl"
)

// UnavailableError reports a host whose service manager is missing or
// incompatible.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("systemd is not available on this host: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// PermissionError reports a privileged operation attempted without root.
type PermissionError struct {
	Detail string
}

func (e *PermissionError) Error() string { return e.Detail }

// Systemd probes `systemd --version` and returns the parsed version number.
func Systemd(run systemctl.Runner) (int, error) {
	exit, out, _, err := run.Run("systemd", "--version")
	if err != nil {
		return 0, &UnavailableError{Err: err}
	}
	if exit != 0 {
		return 0, &UnavailableError{Err: fmt.Errorf("exit status %d", exit)}
	}
	// First line reads like "systemd 252 (252.17-1)".
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return 0, &UnavailableError{Err: fmt.Errorf("unrecognized version output %q", strings.TrimSpace(out))}
	}
	version, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, &UnavailableError{Err: fmt.Errorf("unrecognized version %q", fields[1])}
	}
	return version, nil
}

// IsRoot reports whether the process runs with root privileges.
func IsRoot() bool { return os.Geteuid() == 0 }

// RequireRoot gates modes that write into the system unit directory.
// Operations targeting an operator-chosen directory run unprivileged.
func RequireRoot(usingSystemDir bool) error {
	if usingSystemDir && !IsRoot() {
		return &PermissionError{Detail: "insufficient permissions: run as root (with sudo) or pick an output directory with -d"}
	}
	return nil
}
