//go:build linux

package mirror

import (
	"os"
	"syscall"
	"time"
)

// changeTime reads the inode change time, which stands in for a
// container's lastModified when no info record exists.
func changeTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
