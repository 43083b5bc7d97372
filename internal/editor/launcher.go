package editor

import (
	"fmt"

	"serviceconfig/internal/xexec"
)

// Launcher opens a file in the operator's text editor and blocks until the
// editor exits. It is an interface so tests can substitute a fake.
type Launcher interface {
	Open(path string) error
}

// ExecLauncher launches the configured editor as a child process with the
// operator's terminal attached.
type ExecLauncher struct {
	Editor string
}

func (l ExecLauncher) Open(path string) error {
	if err := xexec.Interactive(l.Editor, path); err != nil {
		return fmt.Errorf("editor %s: %w", l.Editor, err)
	}
	return nil
}
