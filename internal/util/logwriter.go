package util

import (
	"strings"
	"sync"
)

// LogWriter collects log lines in memory, so they can be dumped after the
// fact without racing whatever is on stderr right now.
type LogWriter struct {
	lock   sync.Mutex
	buffer strings.Builder
}

func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Write(p)
}

func (lw *LogWriter) String() string {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.String()
}

func (lw *LogWriter) Empty() bool {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Len() == 0
}
