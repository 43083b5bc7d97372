package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"serviceconfig/internal/style"
	"serviceconfig/internal/version"
)

func runInfo(cmd *cobra.Command, pal style.Palette) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, pal.Key.Sprint("This is a helper tool for configuring systemd services."))
	fmt.Fprintf(out, "%s%s (%s)\n", pal.Success.Sprint("Version: "), version.Version, version.GetShortCommit())
	fmt.Fprintf(out, "%s%s\n", pal.Success.Sprint("Maintainer: "), version.MaintainerNick)
	fmt.Fprintf(out, "%s%s\n", pal.Success.Sprint("Email: "), version.MaintainerEmail)
	return nil
}
