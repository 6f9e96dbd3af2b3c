package services

import (
	"strings"
	"sync"
	"time"
)

// isoMillis matches the layout of JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// FileTimestamp formats t as a filename-safe UTC ISO-8601 timestamp with
// milliseconds, replacing ':' and '.' with '-'.
// Example: 2026-10-16T09-30-00-123Z.
func FileTimestamp(t time.Time) string {
	s := t.UTC().Format(isoMillis)
	return strings.NewReplacer(":", "-", ".", "-").Replace(s)
}

// monotonicClock never returns a time earlier than one it already returned.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	if now == nil {
		now = time.Now
	}
	return &monotonicClock{now: now}
}

// Now returns the current time, clamped to the last returned value.
func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}
