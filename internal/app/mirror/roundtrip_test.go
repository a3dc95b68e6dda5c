package mirror

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
	"github.com/sdvillal/ffb2fs/internal/infra/mozjson"
)

// prt returns distinct whole-second PRTime stamps so the mtime-sorted
// import sees an unambiguous order.
func prt(offset int64) int64 {
	const base = int64(1361318400_000_000) // 2013-02-20
	return base + offset*1_000_000
}

func TestExportImportRoundTrip(t *testing.T) {
	source := &bookmarks.Node{
		ID: 1, Title: "bookmarks", Type: bookmarks.TypeContainer, LastModified: prt(0),
		Children: []*bookmarks.Node{
			{
				ID: 4, Title: "Dev", Type: bookmarks.TypeContainer, LastModified: prt(1),
				Children: []*bookmarks.Node{
					{ID: 5, Title: "Go", Type: bookmarks.TypeBookmark, URI: "https://go.dev/", LastModified: prt(2)},
					{ID: 6, Title: "Rust", Type: bookmarks.TypeBookmark, URI: "https://rust-lang.org/", LastModified: prt(3)},
				},
			},
			{ID: 7, Title: "News", Type: bookmarks.TypeBookmark, URI: "http://news.example.com/", LastModified: prt(4)},
			{
				ID: 8, Title: "Cooking", Type: bookmarks.TypeContainer, LastModified: prt(5),
				Children: []*bookmarks.Node{
					{ID: 9, Title: "Paella", Type: bookmarks.TypeBookmark, URI: "http://paella.example.com/", LastModified: prt(6)},
				},
			},
		},
	}

	root := t.TempDir()
	mirrorDir := filepath.Join(root, "bookmarks")
	destFile := filepath.Join(root, "reconstructed.json")

	// PreserveTimes pins every entry's mtime, making the order the
	// importer recovers deterministic.
	_, err := (Exporter{Root: source, DestDir: mirrorDir, PreserveTimes: true}).Run()
	require.NoError(t, err)

	stats, err := (Importer{SrcDir: mirrorDir, DestFile: destFile}).Run()
	require.NoError(t, err)
	assert.Equal(t, Stats{Containers: 3, Bookmarks: 4}, stats)

	got, err := mozjson.LoadTree(destFile)
	require.NoError(t, err)

	// Shape and URI order survive; ids are freshly assigned.
	require.Len(t, got.Children, 3)
	assert.Equal(t, "Dev", got.Children[0].Title)
	assert.Equal(t, "News", got.Children[1].Title)
	assert.Equal(t, "Cooking", got.Children[2].Title)

	dev := got.Children[0]
	require.Len(t, dev.Children, 2)
	assert.Equal(t, "https://go.dev/", dev.Children[0].URI)
	assert.Equal(t, "https://rust-lang.org/", dev.Children[1].URI)

	cooking := got.Children[2]
	require.Len(t, cooking.Children, 1)
	assert.Equal(t, "http://paella.example.com/", cooking.Children[0].URI)

	_, err = bookmarks.PresentIDs(got, true, true)
	require.NoError(t, err)
	bookmarks.WalkWithParent(got, func(n, parent *bookmarks.Node) {
		if parent != nil {
			assert.Equal(t, parent.ID, n.Parent)
		}
	})
}
