package cmd

import "fmt"

// Mode is the invocation mode, resolved once from the raw flags. Exactly
// one mode runs per invocation.
type Mode int

const (
	ModeCreate Mode = iota
	ModeBuild
	ModeInfo
	ModeDelete
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeBuild:
		return "build"
	case ModeInfo:
		return "info"
	case ModeDelete:
		return "delete"
	case ModeEdit:
		return "edit"
	}
	return "unknown"
}

func resolveMode(opts options) Mode {
	switch {
	case opts.info:
		return ModeInfo
	case opts.build:
		return ModeBuild
	case opts.del:
		return ModeDelete
	case opts.edit:
		return ModeEdit
	}
	return ModeCreate
}

// validate checks combination legality as a pure function over the resolved
// mode. The output-directory override is tolerated everywhere; schema
// selection allows exactly one source; everything else is mode-specific.
func validate(mode Mode, opts options) error {
	fail := func(format string, a ...any) error {
		return &ArgumentError{Err: fmt.Errorf(format, a...)}
	}

	set := 0
	for _, b := range []bool{opts.info, opts.build, opts.del, opts.edit} {
		if b {
			set++
		}
	}
	if set > 1 {
		return fail("the flags --info, --build, --delete and --edit are mutually exclusive")
	}
	if opts.short && opts.extended {
		return fail("-s/--short and -x/--extended are mutually exclusive")
	}
	if opts.schemaPath != "" && (opts.short || opts.extended) {
		return fail("-c/--schema cannot be combined with -s/--short or -x/--extended")
	}

	switch mode {
	case ModeBuild, ModeInfo:
		if opts.service != "" {
			return fail("--%s cannot be used with a service name", mode)
		}
		if opts.short || opts.extended {
			return fail("--%s cannot be used with a schema selection", mode)
		}
	case ModeDelete, ModeEdit:
		if opts.service == "" {
			return fail("--%s requires a service name", mode)
		}
		if opts.short || opts.extended {
			return fail("--%s cannot be used with a schema selection", mode)
		}
	case ModeCreate:
		if opts.service == "" {
			return fail("a service name is required")
		}
	}
	return nil
}
