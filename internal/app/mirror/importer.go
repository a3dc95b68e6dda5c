package mirror

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
	"github.com/sdvillal/ffb2fs/internal/infra/mozjson"
)

// Importer reconstructs a bookmarks tree from a directory hierarchy
// and writes it to DestFile as interchange JSON. Every node gets a
// fresh id; ids embedded in filenames or records are discarded.
type Importer struct {
	SrcDir   string
	DestFile string

	Log *logrus.Logger
}

func (im Importer) Run() (Stats, error) {
	log := im.logger()

	var stats Stats
	root, err := im.readContainer(im.SrcDir, &stats)
	if err != nil {
		return stats, err
	}
	bookmarks.UniquifyIDs(root)
	if err := mozjson.SaveTree(im.DestFile, root); err != nil {
		return stats, err
	}
	log.Debugf("reconstructed %d containers and %d bookmarks from %s", stats.Containers, stats.Bookmarks, im.SrcDir)
	return stats, nil
}

// readContainer rebuilds one container from dir. The reserved info
// file supplies its record when present; otherwise a minimal container
// is synthesized from the directory itself (title from the basename,
// dateAdded from its mtime, lastModified from its change time).
func (im Importer) readContainer(dir string, stats *Stats) (*bookmarks.Node, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotADirectory, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	var container *bookmarks.Node
	infoPath := filepath.Join(dir, ContainerFileName)
	if data, err := os.ReadFile(infoPath); err == nil {
		container, err = mozjson.DecodeRecord(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", infoPath, err)
		}
		if !container.IsContainer() {
			return nil, fmt.Errorf("%w: %s holds a %q record, want a container", bookmarks.ErrCorruptRecord, infoPath, container.Type)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	} else {
		container = bookmarks.NewContainer(
			filepath.Base(dir),
			bookmarks.TimeToPRTime(info.ModTime()),
			bookmarks.TimeToPRTime(changeTime(info)),
		)
	}

	entries, err := sortedByModTime(dir)
	if err != nil {
		return nil, err
	}

	var children []*bookmarks.Node
	for _, ent := range entries {
		path := filepath.Join(dir, ent.name)
		switch {
		case ent.isDir:
			child, err := im.readContainer(path, stats)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case strings.HasSuffix(ent.name, BookmarkExt):
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			bm, err := mozjson.DecodeRecord(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			UpdateTitle(bm, path)
			children = append(children, bm)
			stats.Bookmarks++
		}
	}

	container.Children = children
	UpdateTitle(container, dir)
	stats.Containers++
	return container, nil
}

type dirEntry struct {
	name    string
	isDir   bool
	modTime time.Time
}

// sortedByModTime lists a directory's direct entries in ascending
// mtime order, the best available proxy for the original child order.
// Entries written within one mtime granule keep no defined relative
// order.
func sortedByModTime(dir string) ([]dirEntry, error) {
	raw, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]dirEntry, 0, len(raw))
	for _, ent := range raw {
		fi, err := ent.Info()
		if err != nil {
			return nil, err
		}
		entries = append(entries, dirEntry{name: ent.Name(), isDir: ent.IsDir(), modTime: fi.ModTime()})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].modTime.Before(entries[j].modTime) })
	return entries, nil
}

func (im Importer) logger() *logrus.Logger {
	if im.Log != nil {
		return im.Log
	}
	return logrus.StandardLogger()
}
