// Package mirror maps a bookmarks tree onto a directory hierarchy and
// back: one directory per container, one .ffurl record file per
// bookmark. The two directions are deliberately not perfect inverses —
// ordering is recovered from modification times and titles from
// slugified filenames, so a round trip preserves structure and URIs
// but not ids or exact metadata.
package mirror

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
	"github.com/sdvillal/ffb2fs/internal/infra/mozjson"
)

// Stats counts the nodes a conversion touched.
type Stats struct {
	Containers int
	Bookmarks  int
}

// Exporter mirrors an in-memory bookmarks tree into DestDir.
type Exporter struct {
	Root    *bookmarks.Node
	DestDir string

	// DeleteExisting removes DestDir recursively before writing.
	DeleteExisting bool
	// Overwrite allows replacing container info files already present
	// at their target paths.
	Overwrite bool
	// PreserveTimes stamps written files and directories with the
	// node's own timestamps instead of the wall clock. Note this
	// changes what a later mtime-sorted import sees as the original
	// child order.
	PreserveTimes bool
	// SlugMax caps slug length in generated names; zero means
	// DefaultMaxSlugLength.
	SlugMax int

	Log *logrus.Logger
}

func (e Exporter) Run() (Stats, error) {
	if e.Root == nil {
		return Stats{}, fmt.Errorf("no source tree to export")
	}
	if e.DestDir == "" {
		return Stats{}, fmt.Errorf("destination directory is required")
	}
	log := e.logger()

	if info, err := os.Stat(e.DestDir); err == nil && info.IsDir() {
		if e.DeleteExisting {
			log.Warnf("removing existing destination %s", e.DestDir)
			if err := os.RemoveAll(e.DestDir); err != nil {
				return Stats{}, fmt.Errorf("remove destination: %w", err)
			}
		} else {
			log.Warnf("destination %s already exists", e.DestDir)
		}
	}

	total := 0
	bookmarks.Walk(e.Root, func(*bookmarks.Node) { total++ })
	bar := newProgressBar(total)
	defer bar.Close()

	var stats Stats
	seen := make(map[int64]struct{})
	if err := e.writeContainer(e.Root, e.DestDir, seen, &stats, &bar); err != nil {
		return stats, err
	}
	bar.Finish("done")
	log.Debugf("exported %d containers and %d bookmarks to %s", stats.Containers, stats.Bookmarks, e.DestDir)
	return stats, nil
}

// writeContainer materializes one container and, in order, its
// children: subdirectories for child containers, .ffurl files for
// bookmarks. Id uniqueness is enforced across the whole walk through
// the shared seen set.
func (e Exporter) writeContainer(node *bookmarks.Node, dir string, seen map[int64]struct{}, stats *Stats, bar *progressBar) error {
	if !node.IsContainer() {
		return fmt.Errorf("%w: entry %d must be a container, got type %q", bookmarks.ErrInvalidStructure, node.ID, node.Type)
	}
	if err := checkID(node, seen); err != nil {
		return err
	}

	infoPath := filepath.Join(dir, ContainerFileName)
	if _, err := os.Stat(infoPath); err == nil && !e.Overwrite {
		return fmt.Errorf("%w: %s (pass overwrite or delete the destination)", ErrAlreadyExists, infoPath)
	}
	if err := ensureWritableDir(dir); err != nil {
		return err
	}

	record, err := mozjson.EncodeContainerRecord(node)
	if err != nil {
		return err
	}
	if err := os.WriteFile(infoPath, record, 0o644); err != nil {
		return fmt.Errorf("write container record: %w", err)
	}
	stats.Containers++
	bar.Advance(node.Title)

	for _, child := range node.Children {
		switch {
		case child.IsContainer():
			if err := e.writeContainer(child, filepath.Join(dir, e.nodeFilename(child)), seen, stats, bar); err != nil {
				return err
			}
		case child.IsBookmark():
			if err := checkID(child, seen); err != nil {
				return err
			}
			if len(child.Children) > 0 {
				return fmt.Errorf("%w: bookmark %q must have no children", bookmarks.ErrInvalidStructure, child.Title)
			}
			data, err := mozjson.EncodeBookmarkRecord(child)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, e.nodeFilename(child)+BookmarkExt)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write bookmark record: %w", err)
			}
			if e.PreserveTimes {
				if err := applyNodeTimes(path, child); err != nil {
					return fmt.Errorf("stamp bookmark %q: %w", child.Title, err)
				}
			}
			stats.Bookmarks++
			bar.Advance(child.Title)
		default:
			return fmt.Errorf("%w: unknown type %q for entry %q", bookmarks.ErrInvalidStructure, child.Type, child.Title)
		}
	}

	// Stamp the directory last so child writes cannot refresh it.
	if e.PreserveTimes {
		if err := applyNodeTimes(dir, node); err != nil {
			return fmt.Errorf("stamp container %q: %w", node.Title, err)
		}
	}
	return nil
}

func (e Exporter) nodeFilename(n *bookmarks.Node) string {
	maxLen := e.SlugMax
	if maxLen <= 0 {
		maxLen = DefaultMaxSlugLength
	}
	return nodeFilenameMax(n, maxLen)
}

func (e Exporter) logger() *logrus.Logger {
	if e.Log != nil {
		return e.Log
	}
	return logrus.StandardLogger()
}

func checkID(n *bookmarks.Node, seen map[int64]struct{}) error {
	if n.ID == 0 {
		return fmt.Errorf("%w: entry %q has no id", bookmarks.ErrInvalidStructure, n.Title)
	}
	if _, dup := seen[n.ID]; dup {
		return fmt.Errorf("%w: id %d", bookmarks.ErrDuplicateID, n.ID)
	}
	seen[n.ID] = struct{}{}
	return nil
}

// ensureWritableDir creates path if absent and fails if it exists as
// anything but a directory. Actual writability surfaces on the first
// write as a wrapped os.ErrPermission.
func ensureWritableDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s exists and is not a directory", ErrNotADirectory, path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, 0o755)
}

func applyNodeTimes(path string, n *bookmarks.Node) error {
	mtime := n.LastModified
	if mtime == 0 {
		mtime = n.DateAdded
	}
	if mtime == 0 {
		return nil
	}
	t := bookmarks.PRTimeToTime(mtime)
	return os.Chtimes(path, t, t)
}
