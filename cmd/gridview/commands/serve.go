package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gridview/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve views of the configured datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			addr, _ := cmd.Flags().GetString("addr")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				ConfigPath: configPath,
				Addr:       addr,
				CacheDir:   cacheDir,
				JSON:       jsonLogs,
			})
		},
	}

	cmd.Flags().String("addr", "", "Address to listen on (overrides server.addr)")
	cmd.Flags().String("cache-dir", "", "Viewer cache directory (overrides cache.dir)")
	cmd.Flags().Bool("json", false, "Log as JSON")

	return cmd
}
