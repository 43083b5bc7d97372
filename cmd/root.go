// Package cmd wires the CLI surface and dispatches the invocation mode.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"serviceconfig/internal/config"
)

type options struct {
	info       bool
	build      bool
	short      bool
	extended   bool
	del        bool
	edit       bool
	schemaPath string
	directory  string
	verbose    bool
	service    string
}

// NewRootCmd returns the service-config root command.
func NewRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "service-config [flags] [service_name]",
		Short: "Interactive systemd service configurator",
		Long: `service-config builds and edits systemd unit files through prompted
key/value entry, starting from a schema template, and can enable and start
the result. Leaving a prompt blank drops that key from the unit file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &ArgumentError{Err: fmt.Errorf("expected at most one service name, got %d arguments", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.service = args[0]
			}
			return run(cmd, opts)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})

	f := rootCmd.Flags()
	f.BoolVar(&opts.info, "info", false, "show information about the tool")
	f.BoolVarP(&opts.build, "build", "b", false, "build a default schema in the schemas directory")
	f.StringVarP(&opts.schemaPath, "schema", "c", "", "load defaults from a custom schema")
	f.BoolVarP(&opts.short, "short", "s", false, "use the short configuration schema")
	f.BoolVarP(&opts.extended, "extended", "x", false, "use the extended configuration schema")
	f.StringVarP(&opts.directory, "directory", "d", "", "output directory for the unit file (default "+config.DefaultOutputDir+")")
	f.BoolVar(&opts.del, "delete", false, "delete the named service's unit file")
	f.BoolVar(&opts.edit, "edit", false, "edit an existing unit file directly")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	cobra.OnInitialize(config.Init)

	return rootCmd
}
