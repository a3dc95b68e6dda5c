package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvillal/ffb2fs/internal/app/mirror"
	"github.com/sdvillal/ffb2fs/internal/config"
)

func newExportCmd() *cobra.Command {
	var (
		deleteExisting bool
		overwrite      bool
		preserveTimes  bool
	)

	cmd := &cobra.Command{
		Use:   "export <bookmarks-file> <dest-dir>",
		Short: "Mirror a bookmarks export into a directory hierarchy",
		Long: `Mirror a bookmarks source into the filesystem, one directory per
folder and one .ffurl file per bookmark.

The source format is picked by extension: .json (Firefox backup),
.html (Netscape export) or .sqlite (a profile's places.sqlite).

Examples:
  ffb2fs export bookmarks-2013-02-20.json ~/bookmarks
  ffb2fs export bookmarks.html ~/bookmarks --delete-existing
  ffb2fs export places.sqlite ~/bookmarks --preserve-times`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := mirror.LoadSource(args[0])
			if err != nil {
				return err
			}
			exp := mirror.Exporter{
				Root:           root,
				DestDir:        args[1],
				DeleteExisting: deleteExisting,
				Overwrite:      overwrite,
				PreserveTimes:  preserveTimes,
				SlugMax:        config.SlugMaxLength(),
			}
			stats, err := exp.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d containers, %d bookmarks\n", stats.Containers, stats.Bookmarks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&deleteExisting, "delete-existing", false, "remove the destination directory before writing")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace container records already present in the destination")
	cmd.Flags().BoolVar(&preserveTimes, "preserve-times", false, "stamp written entries with the bookmark timestamps")

	return cmd
}
