//go:build !linux && !darwin

package mirror

import (
	"os"
	"time"
)

// No portable change time here; fall back to the modification time.
func changeTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
