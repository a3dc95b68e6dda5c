package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdvillal/ffb2fs/internal/app/mirror"
	"github.com/sdvillal/ffb2fs/internal/config"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file.ffurl>",
		Short: "Open the URI stored in a .ffurl file in the browser",
		Long: `Open the URI stored in a .ffurl bookmark record in the default
browser (or the command set as "browser" in the config). Associating
the .ffurl extension with this command makes mirrored bookmarks
clickable in a file manager.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mirror.OpenBookmark(args[0], config.Browser())
		},
	}
}
