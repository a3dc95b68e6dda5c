package bookmarks

import "time"

// PRTime is the stamp format of Firefox bookmark exports: microseconds
// since 1970-01-01 UTC. See https://developer.mozilla.org/en/docs/PRTime.

func PRTimeToTime(prtime int64) time.Time {
	return time.UnixMicro(prtime).UTC()
}

func TimeToPRTime(t time.Time) int64 {
	return t.UnixMicro()
}
