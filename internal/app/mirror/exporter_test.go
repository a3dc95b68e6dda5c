package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
	"github.com/sdvillal/ffb2fs/internal/infra/mozjson"
)

func scenarioTree() *bookmarks.Node {
	return &bookmarks.Node{
		ID: 1, Title: "Bookmarks", Type: bookmarks.TypeContainer,
		Children: []*bookmarks.Node{
			{ID: 2, Title: "Example", Type: bookmarks.TypeBookmark, URI: "http://example.com"},
		},
	}
}

func decodeRecordFile(t *testing.T, path string) *bookmarks.Node {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	n, err := mozjson.DecodeRecord(data)
	require.NoError(t, err)
	return n
}

func TestExportScenario(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror")

	stats, err := (Exporter{Root: scenarioTree(), DestDir: dest}).Run()
	require.NoError(t, err)
	assert.Equal(t, Stats{Containers: 1, Bookmarks: 1}, stats)

	info := decodeRecordFile(t, filepath.Join(dest, ContainerFileName))
	assert.True(t, info.IsContainer())
	assert.Equal(t, "Bookmarks", info.Title)
	assert.Empty(t, info.Children)

	bm := decodeRecordFile(t, filepath.Join(dest, "example__ffid=2.ffurl"))
	assert.True(t, bm.IsBookmark())
	assert.Equal(t, int64(2), bm.ID)
	assert.Equal(t, "http://example.com", bm.URI)
}

func TestExportNestedContainers(t *testing.T) {
	root := &bookmarks.Node{
		ID: 1, Title: "Bookmarks", Type: bookmarks.TypeContainer,
		Children: []*bookmarks.Node{
			{
				ID: 2, Title: "Dev Tools", Type: bookmarks.TypeContainer,
				Children: []*bookmarks.Node{
					{ID: 3, Title: "Go", Type: bookmarks.TypeBookmark, URI: "https://go.dev/"},
				},
			},
		},
	}
	dest := filepath.Join(t.TempDir(), "mirror")

	stats, err := (Exporter{Root: root, DestDir: dest}).Run()
	require.NoError(t, err)
	assert.Equal(t, Stats{Containers: 2, Bookmarks: 1}, stats)

	sub := filepath.Join(dest, "dev-tools__ffid=2")
	require.DirExists(t, sub)
	require.FileExists(t, filepath.Join(sub, ContainerFileName))
	require.FileExists(t, filepath.Join(sub, "go__ffid=3.ffurl"))
}

func TestExportDuplicateID(t *testing.T) {
	root := scenarioTree()
	root.Children = append(root.Children, &bookmarks.Node{
		ID: 2, Title: "Again", Type: bookmarks.TypeBookmark, URI: "http://again/",
	})

	_, err := (Exporter{Root: root, DestDir: filepath.Join(t.TempDir(), "m")}).Run()
	require.ErrorIs(t, err, bookmarks.ErrDuplicateID)
}

func TestExportBookmarkWithChildren(t *testing.T) {
	root := scenarioTree()
	root.Children[0].Children = []*bookmarks.Node{
		{ID: 3, Title: "impossible", Type: bookmarks.TypeBookmark, URI: "http://x/"},
	}

	_, err := (Exporter{Root: root, DestDir: filepath.Join(t.TempDir(), "m")}).Run()
	require.ErrorIs(t, err, bookmarks.ErrInvalidStructure)
}

func TestExportRootMustBeContainer(t *testing.T) {
	root := &bookmarks.Node{ID: 1, Title: "leaf", Type: bookmarks.TypeBookmark, URI: "http://x/"}
	_, err := (Exporter{Root: root, DestDir: filepath.Join(t.TempDir(), "m")}).Run()
	require.ErrorIs(t, err, bookmarks.ErrInvalidStructure)
}

func TestExportUnknownChildType(t *testing.T) {
	root := scenarioTree()
	root.Children = append(root.Children, &bookmarks.Node{ID: 9, Title: "sep", Type: "text/x-moz-place-separator"})
	_, err := (Exporter{Root: root, DestDir: filepath.Join(t.TempDir(), "m")}).Run()
	require.ErrorIs(t, err, bookmarks.ErrInvalidStructure)
}

func TestExportRefusesExistingRecordWithoutOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror")

	_, err := (Exporter{Root: scenarioTree(), DestDir: dest}).Run()
	require.NoError(t, err)

	_, err = (Exporter{Root: scenarioTree(), DestDir: dest}).Run()
	require.ErrorIs(t, err, ErrAlreadyExists)

	_, err = (Exporter{Root: scenarioTree(), DestDir: dest, Overwrite: true}).Run()
	require.NoError(t, err)
}

func TestExportDeleteExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror")
	stale := filepath.Join(dest, "stale__ffid=99.ffurl")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0o644))

	_, err := (Exporter{Root: scenarioTree(), DestDir: dest, DeleteExisting: true}).Run()
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestExportDestIsFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(dest, []byte("x"), 0o644))

	_, err := (Exporter{Root: scenarioTree(), DestDir: dest}).Run()
	require.ErrorIs(t, err, ErrNotADirectory)
}

func TestExportPreserveTimes(t *testing.T) {
	root := scenarioTree()
	root.Children[0].LastModified = 1231857403576669
	dest := filepath.Join(t.TempDir(), "mirror")

	_, err := (Exporter{Root: root, DestDir: dest, PreserveTimes: true}).Run()
	require.NoError(t, err)

	fi, err := os.Stat(filepath.Join(dest, "example__ffid=2.ffurl"))
	require.NoError(t, err)
	assert.Equal(t, bookmarks.PRTimeToTime(1231857403576669), fi.ModTime().UTC())
}
