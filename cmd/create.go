package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"serviceconfig/internal/config"
	"serviceconfig/internal/editor"
	"serviceconfig/internal/preflight"
	"serviceconfig/internal/schema"
	"serviceconfig/internal/style"
	"serviceconfig/internal/systemctl"
	"serviceconfig/internal/unit"
)

// runCreate is the dominant path: load a schema, let the operator fill it
// in, write the unit file, then optionally hand it to the editor and to
// systemctl. Control-command failures are reported but never unwind the
// session; the unit file is already on disk by then.
func runCreate(cmd *cobra.Command, opts options, cfg config.Config, name, dir string,
	sysd *systemctl.Client, launch editor.Launcher, pal style.Palette, log *logrus.Logger) error {

	out := cmd.OutOrStdout()
	store := schema.NewStore(cfg.SchemasDir)

	schemaPath := store.Path(schema.Default)
	switch {
	case opts.schemaPath != "":
		schemaPath = opts.schemaPath
	case opts.short:
		schemaPath = store.Path(schema.Short)
		fmt.Fprintln(out, "Using short schema configuration.")
	case opts.extended:
		schemaPath = store.Path(schema.Extended)
		fmt.Fprintln(out, "Using extended schema configuration.")
	}

	model, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	// Interrupt during the edit session aborts before anything is written.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	ed := editor.New(reader, out, pal)
	err = ed.Edit(ctx, model)
	stop()
	if err != nil {
		fmt.Fprintln(out, "\nAborting.")
		return err
	}

	dest := filepath.Join(dir, name)
	if err := unit.Write(model, dest); err != nil {
		return err
	}
	log.WithField("path", dest).Debug("unit file written")

	manual, err := confirm(reader, out, "Do you want to manually edit the new configuration?", false)
	if err != nil {
		return err
	}
	if manual {
		fmt.Fprintln(out, "Opening editor...")
		if err := launch.Open(dest); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
		}
	} else {
		fmt.Fprintln(out, "The configuration file won't be edited.")
	}

	if preflight.IsRoot() {
		enable, err := confirm(reader, out, "Do you want to enable the service?", false)
		if err != nil {
			return err
		}
		if enable {
			fmt.Fprintln(out, "Enabling service...")
			if err := apply(sysd, func() error { return sysd.Enable(name) }); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
			} else {
				fmt.Fprintln(out, "Service enabled.")
			}
		} else {
			fmt.Fprintln(out, "Service won't be enabled.")
		}

		start, err := confirm(reader, out, "Do you want to start the service?", true)
		if err != nil {
			return err
		}
		if start {
			fmt.Fprintln(out, "Starting service...")
			if err := apply(sysd, func() error { return sysd.Start(name) }); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), pal.Warn.Sprint(err.Error()))
			} else {
				fmt.Fprintln(out, "Service started.")
			}
		} else {
			fmt.Fprintln(out, "Service won't be started.")
		}
	} else {
		fmt.Fprintln(out, pal.Error.Sprint("No permissions to enable/start the service. Run with root privileges."))
	}

	return finish(out, pal, dest, ModeCreate)
}

// apply reloads the daemon and runs one control operation.
func apply(sysd *systemctl.Client, op func() error) error {
	if err := sysd.Reload(); err != nil {
		return err
	}
	return op()
}
