// Package netscape parses the Netscape bookmarks HTML format, the
// "Export Bookmarks to HTML" output of Firefox and most other
// browsers: folders as <H3> headers followed by a <DL> list, bookmarks
// as <A HREF=...> entries.
package netscape

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
)

// ParseFile reads a Netscape bookmarks HTML export into a bookmarks
// tree rooted at a synthetic container. Node ids are assigned fresh.
func ParseFile(path string) (*bookmarks.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks html: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*bookmarks.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse bookmarks html: %w", err)
	}

	root := bookmarks.NewContainer("Bookmarks", 0, 0)
	stack := []*bookmarks.Node{root}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		top := stack[len(stack)-1]
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h3":
				folder := bookmarks.NewContainer(nodeText(n), attrPRTime(n, "add_date"), attrPRTime(n, "last_modified"))
				top.Children = append(top.Children, folder)
				stack = append(stack, folder)
			case "a":
				bm := &bookmarks.Node{
					Type:         bookmarks.TypeBookmark,
					Title:        nodeText(n),
					URI:          attr(n, "href"),
					DateAdded:    attrPRTime(n, "add_date"),
					LastModified: attrPRTime(n, "last_modified"),
				}
				if bm.URI != "" {
					top.Children = append(top.Children, bm)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		// A folder's entries live in the <DL> following its header, so
		// leaving the list closes the folder. The outermost list maps
		// to the root, which stays.
		if n.Type == html.ElementNode && n.Data == "dl" && len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}
	walk(doc)

	bookmarks.UniquifyIDs(root)
	return root, nil
}

func nodeText(n *html.Node) string {
	if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
		return strings.TrimSpace(n.FirstChild.Data)
	}
	return ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// attrPRTime scales the format's unix-seconds stamps to PRTime.
func attrPRTime(n *html.Node, key string) int64 {
	sec, err := strconv.ParseInt(strings.TrimSpace(attr(n, key)), 10, 64)
	if err != nil || sec <= 0 {
		return 0
	}
	return sec * 1_000_000
}
