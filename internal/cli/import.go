package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvillal/ffb2fs/internal/app/mirror"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <src-dir> <dest-file>",
		Short: "Rebuild a bookmarks file from a directory hierarchy",
		Long: `Walk a directory hierarchy previously written by export (or
rearranged by hand) and rebuild the interchange JSON bookmarks file.

Child order is recovered from modification times; every node gets a
fresh id. Renamed directories and .ffurl files retitle their entries.

Example:
  ffb2fs import ~/bookmarks reconstructed-bookmarks.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			imp := mirror.Importer{SrcDir: args[0], DestFile: args[1]}
			stats, err := imp.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reconstructed %d containers, %d bookmarks\n", stats.Containers, stats.Bookmarks)
			return nil
		},
	}
}
