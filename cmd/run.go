package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"serviceconfig/internal/config"
	"serviceconfig/internal/editor"
	"serviceconfig/internal/logging"
	"serviceconfig/internal/preflight"
	"serviceconfig/internal/style"
	"serviceconfig/internal/systemctl"
	"serviceconfig/internal/unit"
	"serviceconfig/internal/xexec"
)

// run resolves the mode, validates the invocation, runs the host preflight
// and hands off to the mode runner. Argument and permission problems are
// fatal before any side effect.
func run(cmd *cobra.Command, opts options) error {
	mode := resolveMode(opts)
	if err := validate(mode, opts); err != nil {
		return err
	}

	cfg := config.Load()
	pal := style.New(style.Detect())
	log := logging.New(opts.verbose)

	if mode == ModeInfo {
		return runInfo(cmd, pal)
	}

	version, err := preflight.Systemd(systemctl.RunnerFunc(xexec.Run))
	if err != nil {
		return err
	}
	log.WithField("version", version).Debug("systemd detected")

	dir := opts.directory
	if dir == "" {
		dir = cfg.OutputDir
	}
	if mode != ModeBuild {
		if err := preflight.RequireRoot(dir == config.DefaultOutputDir); err != nil {
			return err
		}
	}

	name := opts.service
	if name != "" {
		// Edit accepts a literal path to a unit file; everything else gets
		// the normalized service name.
		if mode != ModeEdit || !strings.Contains(name, "/") {
			if name, err = unit.NormalizeName(name); err != nil {
				return &ArgumentError{Err: err}
			}
		}
	}

	sysd := systemctl.New(log)
	launch := editor.ExecLauncher{Editor: cfg.Editor}
	switch mode {
	case ModeBuild:
		return runBuild(cmd, cfg, pal)
	case ModeDelete:
		return runDelete(cmd, name, sysd, pal)
	case ModeEdit:
		return runEdit(cmd, name, sysd, launch, pal)
	}
	return runCreate(cmd, opts, cfg, name, dir, sysd, launch, pal, log)
}
