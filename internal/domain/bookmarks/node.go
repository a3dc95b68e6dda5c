package bookmarks

import "encoding/json"

// Firefox interchange type discriminants.
const (
	TypeContainer = "text/x-moz-place-container"
	TypeBookmark  = "text/x-moz-place"
)

// Node is one entry of a bookmarks tree: a container (folder) or a
// bookmark leaf. Fields the converter does not interpret (root, index,
// annos, anything Firefox adds later) are kept verbatim in Extra so a
// load/dump cycle does not lose them.
type Node struct {
	ID           int64
	Title        string
	Type         string
	URI          string
	DateAdded    int64 // PRTime, microseconds since 1970-01-01
	LastModified int64 // PRTime
	Parent       int64 // parent container id, lookup only
	Children     []*Node
	Extra        map[string]any
}

func (n *Node) IsContainer() bool { return n.Type == TypeContainer }
func (n *Node) IsBookmark() bool  { return n.Type == TypeBookmark }

// NewContainer returns a container node with the given title and
// PRTime stamps. Used by the importer when a directory carries no
// info record of its own.
func NewContainer(title string, dateAdded, lastModified int64) *Node {
	return &Node{
		Type:         TypeContainer,
		Title:        title,
		DateAdded:    dateAdded,
		LastModified: lastModified,
	}
}

var knownNodeKeys = map[string]struct{}{
	"id":           {},
	"title":        {},
	"type":         {},
	"uri":          {},
	"dateAdded":    {},
	"lastModified": {},
	"parent":       {},
	"children":     {},
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		Type         string  `json:"type"`
		URI          string  `json:"uri"`
		DateAdded    int64   `json:"dateAdded"`
		LastModified int64   `json:"lastModified"`
		Parent       int64   `json:"parent"`
		Children     []*Node `json:"children"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.ID = aux.ID
	n.Title = aux.Title
	n.Type = aux.Type
	n.URI = aux.URI
	n.DateAdded = aux.DateAdded
	n.LastModified = aux.LastModified
	n.Parent = aux.Parent
	n.Children = aux.Children
	n.Extra = nil

	for key, value := range raw {
		if _, known := knownNodeKeys[key]; known {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		if n.Extra == nil {
			n.Extra = map[string]any{}
		}
		n.Extra[key] = v
	}
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(n.Extra)+8)
	for key, value := range n.Extra {
		out[key] = value
	}
	out["id"] = n.ID
	out["title"] = n.Title
	out["type"] = n.Type
	if n.URI != "" {
		out["uri"] = n.URI
	}
	if n.DateAdded != 0 {
		out["dateAdded"] = n.DateAdded
	}
	if n.LastModified != 0 {
		out["lastModified"] = n.LastModified
	}
	if n.Parent != 0 {
		out["parent"] = n.Parent
	}
	if n.IsContainer() {
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		out["children"] = children
	}
	return json.Marshal(out)
}
