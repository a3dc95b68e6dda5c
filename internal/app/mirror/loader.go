package mirror

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
	"github.com/sdvillal/ffb2fs/internal/infra/mozjson"
	"github.com/sdvillal/ffb2fs/internal/infra/netscape"
	"github.com/sdvillal/ffb2fs/internal/infra/places"
)

// LoadSource reads a bookmarks tree from any source format Firefox
// produces: the interchange JSON backup, a Netscape HTML export, or a
// profile's places.sqlite database. The format is picked by extension.
func LoadSource(path string) (*bookmarks.Node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return mozjson.LoadTree(path)
	case ".html", ".htm":
		return netscape.ParseFile(path)
	case ".sqlite":
		return places.Read(path)
	default:
		return nil, fmt.Errorf("unsupported bookmarks source %q (want .json, .html or .sqlite)", path)
	}
}
