package entity

import (
	"sync/atomic"
	"time"
)

// StoredTime normalizes t to the precision mood entry dates are persisted with.
func StoredTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// IDGenerator hands out strictly increasing mood entry ids. Ids stay close to
// unix milliseconds so they sort like the legacy timestamp ids, but two entries
// created within the same millisecond still get distinct values.
type IDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorWithClock is used in tests to pin the wall clock.
func NewIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	for {
		last := g.last.Load()
		next := g.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Seed makes every following id greater than id.
func (g *IDGenerator) Seed(id int64) {
	for {
		last := g.last.Load()
		if id <= last || g.last.CompareAndSwap(last, id) {
			return
		}
	}
}
