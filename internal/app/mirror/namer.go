package mirror

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
)

const (
	// ContainerFileName is the reserved info file inside each
	// container directory holding that container's serialized record.
	ContainerFileName = "__info__.ffcontainer"

	// BookmarkExt marks files holding one serialized bookmark each.
	BookmarkExt = ".ffurl"

	// idToken separates the slugified title from the original node id
	// in a generated filename. Slugify strips "=", so the token can
	// never occur inside a slug.
	idToken = "__ffid="

	// DefaultMaxSlugLength keeps generated names well under common
	// filesystem limits. See
	// https://en.wikipedia.org/wiki/Comparison_of_file_systems#Limits.
	DefaultMaxSlugLength = 200
)

// NFKD-decompose, drop combining marks so accented characters degrade
// to their base letter, then drop whatever non-ASCII remains.
var slugNormalizer = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s-]`)
	hyphenRuns   = regexp.MustCompile(`[-\s]+`)
)

// Slugify derives a filesystem-safe name from a bookmark title:
// normalized, lowercased, stripped of everything but word characters,
// whitespace and hyphens, with whitespace/hyphen runs collapsed to a
// single hyphen. Idempotent for any input whose slug fits maxLen.
func Slugify(title string) string {
	return SlugifyMax(title, DefaultMaxSlugLength)
}

// SlugifyMax is Slugify with an explicit length cap. The cut is a hard
// character cut, not word-aware.
func SlugifyMax(title string, maxLen int) string {
	s, _, err := transform.String(slugNormalizer, title)
	if err != nil {
		s = title
	}
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = hyphenRuns.ReplaceAllString(s, "-")
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}

// NodeFilename returns the name a node is stored under:
// "<slug>__ffid=<id>". The id suffix keeps names unique even when two
// titles slugify identically, directory extensions aside.
func NodeFilename(n *bookmarks.Node) string {
	return nodeFilenameMax(n, DefaultMaxSlugLength)
}

func nodeFilenameMax(n *bookmarks.Node, maxLen int) string {
	return fmt.Sprintf("%s%s%d", SlugifyMax(n.Title, maxLen), idToken, n.ID)
}

// RecoverTitle extracts the human-facing segment of a stored filename:
// the part before the first "__", with the reserved bookmark extension
// stripped and double quotes replaced by apostrophes.
func RecoverTitle(path string) string {
	seg := titleSegment(path)
	return strings.ReplaceAll(seg, `"`, "'")
}

func titleSegment(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), BookmarkExt)
	seg, _, _ := strings.Cut(base, "__")
	return seg
}

// UpdateTitle reconciles a node's stored title with the filename it
// was read from. When they disagree the file was renamed on disk, and
// the rename wins: this is how a user retitles a bookmark with a file
// manager. Lossy by construction: two titles with the same slug are
// indistinguishable here.
func UpdateTitle(n *bookmarks.Node, path string) {
	if titleSegment(path) != Slugify(n.Title) {
		n.Title = RecoverTitle(path)
	}
}
