package mirror

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/sdvillal/ffb2fs/internal/domain/bookmarks"
	"github.com/sdvillal/ffb2fs/internal/infra/mozjson"
)

// launchBrowser is a package variable so tests can intercept the
// external command.
var launchBrowser = func(browser, url string) error {
	var cmd string
	var args []string
	if browser != "" {
		cmd = browser
	} else {
		switch runtime.GOOS {
		case "windows":
			cmd = "cmd"
			args = []string{"/c", "start"}
		case "darwin":
			cmd = "open"
		default:
			cmd = "xdg-open"
		}
	}
	args = append(args, url)
	return exec.Command(cmd, args...).Start()
}

// OpenBookmark loads the record stored in a .ffurl file and opens its
// URI in a browser: the configured command when set, the platform
// default otherwise.
func OpenBookmark(path, browser string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bookmark record: %w", err)
	}
	node, err := mozjson.DecodeRecord(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if node.URI == "" {
		return fmt.Errorf("%w: %s carries no uri", bookmarks.ErrCorruptRecord, path)
	}
	return launchBrowser(browser, node.URI)
}
