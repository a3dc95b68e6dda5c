package mirror

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSourceUnsupportedExtension(t *testing.T) {
	_, err := LoadSource("bookmarks.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bookmarks source")
}

func TestLoadSourceMissingJSON(t *testing.T) {
	_, err := LoadSource(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadSourceJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	payload := `{"id":1,"title":"Bookmarks","type":"text/x-moz-place-container","children":[
		{"id":2,"title":"Example","type":"text/x-moz-place","uri":"http://example.com"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	root, err := LoadSource(path)
	require.NoError(t, err)
	assert.True(t, root.IsContainer())
	require.Len(t, root.Children, 1)
	assert.Equal(t, "http://example.com", root.Children[0].URI)
}

func TestLoadSourceHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	payload := `<DL><DT><A HREF="http://example.com/">Example</A></DL>`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	root, err := LoadSource(path)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "http://example.com/", root.Children[0].URI)
}
