package mirror

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Example":                    "example",
		"Café München":               "cafe-munchen",
		"  spaces\tand   newlines\n": "spaces-and-newlines",
		"a=b=c":                      "abc",
		"Python: CLI & more!":        "python-cli-more",
		"under_score stays":          "under_score-stays",
		"日本語 title":                  "title",
		"":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "slugify(%q)", in)
	}
}

func TestSlugifyStripsIDToken(t *testing.T) {
	// "=" never survives, so the __ffid= token cannot occur in a slug.
	assert.NotContains(t, Slugify("weird__ffid=7 title"), idToken)
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, title := range []string{"Example", "Café München", "a - b -- c", "He said \"hi\""} {
		slug := Slugify(title)
		assert.Equal(t, slug, Slugify(slug), "slugify not idempotent for %q", title)
	}
}

func TestSlugifyMaxTruncates(t *testing.T) {
	long := strings.Repeat("a", 300)
	assert.Len(t, SlugifyMax(long, 200), 200)
	assert.Equal(t, strings.Repeat("a", 300), SlugifyMax(long, 0))
}

func TestNodeFilename(t *testing.T) {
	n := &bookmarks.Node{ID: 2, Title: "Example", Type: bookmarks.TypeBookmark}
	assert.Equal(t, "example__ffid=2", NodeFilename(n))
}

func TestRecoverTitle(t *testing.T) {
	assert.Equal(t, "example", RecoverTitle("/some/dir/example__ffid=2.ffurl"))
	assert.Equal(t, "my folder", RecoverTitle("/some/my folder"))
	assert.Equal(t, "she said 'hi'", RecoverTitle(`she said "hi"__ffid=3.ffurl`))
}

func TestUpdateTitle(t *testing.T) {
	// Matching slug: stored title wins.
	n := &bookmarks.Node{ID: 2, Title: "Example", Type: bookmarks.TypeBookmark}
	UpdateTitle(n, "example__ffid=2.ffurl")
	assert.Equal(t, "Example", n.Title)

	// Renamed on disk: the filename wins.
	UpdateTitle(n, "renamed bookmark__ffid=2.ffurl")
	assert.Equal(t, "renamed bookmark", n.Title)
}
