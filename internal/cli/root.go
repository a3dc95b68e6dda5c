// Package cli holds the cobra command surface of ffb2fs.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sdvillal/ffb2fs/internal/config"
)

// NewRootCmd creates the top-level "ffb2fs" command and registers the
// three operations against it.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "ffb2fs",
		Short: "Mirror Firefox bookmarks into the filesystem and back",
		Long: `ffb2fs maps a bookmarks tree onto a directory hierarchy: one
directory per folder, one .ffurl file per bookmark. The mirror can be
rearranged with any file manager and converted back into a bookmarks
file Firefox can restore.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ffb2fs/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		config.Init(cfgFile)
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	}

	root.AddCommand(
		newExportCmd(),
		newImportCmd(),
		newOpenCmd(),
	)

	return root
}
