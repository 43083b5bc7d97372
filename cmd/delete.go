package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"serviceconfig/internal/style"
	"serviceconfig/internal/systemctl"
	"serviceconfig/internal/unit"
)

// systemUnitDirs are the distribution-managed unit locations. Deleting a
// unit that lives there needs an explicit confirmation.
var systemUnitDirs = []string{"/lib/systemd/system", "/usr/lib/systemd/system"}

// runDelete stops and disables the service, removes its unit file and
// reloads the daemon. Answering no to the confirmation leaves everything
// untouched and exits cleanly.
func runDelete(cmd *cobra.Command, name string, sysd *systemctl.Client, pal style.Palette) error {
	out := cmd.OutOrStdout()

	dest, err := sysd.FragmentPath(name)
	if err != nil {
		return err
	}

	managed := false
	for _, dir := range systemUnitDirs {
		if strings.HasPrefix(dest, dir+"/") {
			managed = true
			break
		}
	}
	if managed {
		reader := bufio.NewReader(cmd.InOrStdin())
		force, err := confirm(reader, out, "This is not a user-configured service, do you want to delete it anyway?", false)
		if err != nil {
			return err
		}
		if !force {
			fmt.Fprintln(out, "Aborting...")
			return nil
		}
	}

	fmt.Fprintln(out, "Deleting service...")
	if err := sysd.Stop(name); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
	}
	if err := sysd.Disable(name); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
	}
	if err := os.Remove(dest); err != nil {
		return &unit.WriteError{Path: dest, Err: err}
	}
	if err := sysd.Reload(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
	}
	fmt.Fprintln(out, pal.Success.Sprint("Deleted service."))
	return nil
}
