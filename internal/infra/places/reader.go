// Package places reads bookmarks straight out of a Firefox profile's
// places.sqlite database, for profiles that were never exported to
// JSON in the first place.
package places

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
)

// moz_bookmarks type tags.
const (
	typeBookmark  = 1
	typeFolder    = 2
	typeSeparator = 3
)

type row struct {
	id           int64
	typ          int
	parent       int64
	title        string
	url          string
	dateAdded    int64
	lastModified int64
}

// Read loads the bookmark hierarchy from a places.sqlite file. The
// places root becomes the tree root; separators and anything that is
// neither folder nor bookmark are skipped. dateAdded/lastModified are
// already PRTime in this schema and pass through untouched.
func Read(path string) (*bookmarks.Node, error) {
	// Stat first: the driver would happily create an empty database
	// at a mistyped path.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("places database: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open places database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT b.id, b.type, IFNULL(b.parent, 0), IFNULL(b.title, ''),
		       IFNULL(p.url, ''), IFNULL(b.dateAdded, 0), IFNULL(b.lastModified, 0)
		FROM moz_bookmarks b
		LEFT JOIN moz_places p ON b.fk = p.id
		ORDER BY b.parent, b.position`)
	if err != nil {
		return nil, fmt.Errorf("query moz_bookmarks: %w", err)
	}
	defer rows.Close()

	var all []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.typ, &r.parent, &r.title, &r.url, &r.dateAdded, &r.lastModified); err != nil {
			return nil, fmt.Errorf("scan moz_bookmarks row: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read moz_bookmarks: %w", err)
	}

	nodes := make(map[int64]*bookmarks.Node, len(all))
	var root *bookmarks.Node
	for _, r := range all {
		switch r.typ {
		case typeFolder:
			n := bookmarks.NewContainer(r.title, r.dateAdded, r.lastModified)
			n.ID = r.id
			nodes[r.id] = n
			if r.parent == 0 {
				root = n
			}
		case typeBookmark:
			nodes[r.id] = &bookmarks.Node{
				ID:           r.id,
				Type:         bookmarks.TypeBookmark,
				Title:        r.title,
				URI:          r.url,
				DateAdded:    r.dateAdded,
				LastModified: r.lastModified,
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %s has no root folder", bookmarks.ErrCorruptRecord, path)
	}
	if root.Title == "" {
		root.Title = "Bookmarks"
	}

	// Rows arrive ordered by (parent, position), so appending in row
	// order keeps each folder's children in their browser order.
	for _, r := range all {
		node, ok := nodes[r.id]
		if !ok || node == root {
			continue
		}
		parent, ok := nodes[r.parent]
		if !ok || !parent.IsContainer() {
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return root, nil
}
