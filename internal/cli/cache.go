package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/cache"
)

// cacheCmd groups the document cache commands
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the document cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached mission document",
	Long: `Clear empties the on-disk document cache so the next command fetches
every document again. It works whether or not caching is enabled.

Example:
  cartofolio cache clear`,
	Args: cobra.NoArgs,
	RunE: runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL)
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared document cache at %s\n", cache.ExpandDir(cfg.Cache.DiskDir))
	return nil
}
