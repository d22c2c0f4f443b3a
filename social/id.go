package social

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a decimal millisecond token, the id format the stored
// document has always carried. A process-wide monotonic guard bumps the
// value past the previous one so rapid successive creates cannot collide.
func NewID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}
