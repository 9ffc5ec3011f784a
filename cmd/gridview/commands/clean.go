package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gridview/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the viewer cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath,
				CacheDir:   cacheDir,
			})
		},
	}

	cmd.Flags().String("cache-dir", "", "Viewer cache directory (overrides cache.dir)")

	return cmd
}
