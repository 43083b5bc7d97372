package cmd

import (
	"github.com/spf13/cobra"

	"serviceconfig/internal/config"
	"serviceconfig/internal/schema"
	"serviceconfig/internal/style"
)

// runBuild writes the built-in default schema into the schemas directory.
// An existing file is never overwritten.
func runBuild(cmd *cobra.Command, cfg config.Config, pal style.Palette) error {
	store := schema.NewStore(cfg.SchemasDir)
	path := store.Path(schema.Built)
	if err := schema.BuildDefault(path); err != nil {
		return err
	}
	return finish(cmd.OutOrStdout(), pal, path, ModeBuild)
}
