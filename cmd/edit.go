package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"serviceconfig/internal/editor"
	"serviceconfig/internal/style"
	"serviceconfig/internal/systemctl"
)

// runEdit opens an installed service's unit file in the external editor.
func runEdit(cmd *cobra.Command, name string, sysd *systemctl.Client, launch editor.Launcher, pal style.Palette) error {
	out := cmd.OutOrStdout()

	// A name containing a path separator is taken as the unit file itself;
	// otherwise systemd resolves it.
	dest := name
	if !strings.Contains(name, "/") {
		var err error
		if dest, err = sysd.FragmentPath(name); err != nil {
			return err
		}
	} else if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("unit file %s: %w", dest, err)
	}

	fmt.Fprintln(out, "Opening editor...")
	if err := launch.Open(dest); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
	}

	return finish(out, pal, dest, ModeEdit)
}
