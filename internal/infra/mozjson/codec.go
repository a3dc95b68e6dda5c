// Package mozjson reads and writes the Firefox bookmarks interchange
// format: a nested JSON object tree, plus the single-node records this
// tool stores on disk (container info files and .ffurl bookmarks).
// Records are the same extras-preserving JSON as the interchange tree,
// so fields unknown to this tool survive a dump/load cycle unchanged.
package mozjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
)

// LoadTree decodes a whole bookmarks tree from an interchange JSON
// file. A missing file surfaces as a wrapped os.ErrNotExist.
func LoadTree(path string) (*bookmarks.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}
	var root bookmarks.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", bookmarks.ErrCorruptRecord, path, err)
	}
	return &root, nil
}

// SaveTree writes the tree as compact interchange JSON, the same shape
// Firefox produces.
func SaveTree(path string, root *bookmarks.Node) error {
	data, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("encode bookmarks tree: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bookmarks file: %w", err)
	}
	return nil
}

// EncodeContainerRecord serializes a container with its children
// cleared: the directory's own contents represent the subtree, the
// record must not duplicate it.
func EncodeContainerRecord(n *bookmarks.Node) ([]byte, error) {
	record := *n
	record.Children = nil
	return json.Marshal(&record)
}

// EncodeBookmarkRecord serializes a bookmark in full, uri included.
func EncodeBookmarkRecord(n *bookmarks.Node) ([]byte, error) {
	return json.Marshal(n)
}

// DecodeRecord is the inverse of the record encoders.
func DecodeRecord(data []byte) (*bookmarks.Node, error) {
	var n bookmarks.Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", bookmarks.ErrCorruptRecord, err)
	}
	return &n, nil
}
