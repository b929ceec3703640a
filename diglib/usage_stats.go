package diglib

import (
	"sync"
	"time"
)

// UsageStats accumulates outcomes of a single run.
type UsageStats struct {
	mutex        sync.Mutex
	started      time.Time
	successCount int
	failureCount int
}

func (u *UsageStats) Used(err error) {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if err == nil {
		u.successCount++
	} else {
		u.failureCount++
	}
}

func (u *UsageStats) Report() Report {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	rv := Report{
		Total:     u.successCount + u.failureCount,
		Succeeded: u.successCount,
		Failed:    u.failureCount,
	}

	if !u.started.IsZero() {
		rv.Elapsed = time.Since(u.started)
	}

	return rv
}

func newUsageStats() *UsageStats {
	return &UsageStats{
		started: time.Now(),
	}
}
