package engine

import (
	"fmt"
	"sync"
	"time"
)

// defaultTimingSamples is the number of builds a BuildTimingBuffer keeps when
// no capacity is given.
const defaultTimingSamples = 60

// BuildTimingBuffer keeps the durations of the most recent builds, oldest
// first once full.
type BuildTimingBuffer struct {
	mu      sync.Mutex
	samples []time.Duration
	next    int
	full    bool
}

// NewBuildTimingBuffer returns a buffer holding the last capacity build
// durations. A non-positive capacity keeps 60.
func NewBuildTimingBuffer(capacity int) *BuildTimingBuffer {
	if capacity <= 0 {
		capacity = defaultTimingSamples
	}
	return &BuildTimingBuffer{samples: make([]time.Duration, capacity)}
}

// Add records the duration of one build.
func (b *BuildTimingBuffer) Add(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.next] = d
	b.next = (b.next + 1) % len(b.samples)
	if b.next == 0 {
		b.full = true
	}
}

// Samples returns the recorded durations, oldest first.
func (b *BuildTimingBuffer) Samples() []time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.samplesLocked()
}

func (b *BuildTimingBuffer) samplesLocked() []time.Duration {
	if !b.full {
		if b.next == 0 {
			return nil
		}
		return append([]time.Duration(nil), b.samples[:b.next]...)
	}
	out := make([]time.Duration, 0, len(b.samples))
	out = append(out, b.samples[b.next:]...)
	return append(out, b.samples[:b.next]...)
}

// Count returns the number of recorded durations.
func (b *BuildTimingBuffer) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.full {
		return len(b.samples)
	}
	return b.next
}

// Stats summarizes the recorded durations.
func (b *BuildTimingBuffer) Stats() BuildStats {
	b.mu.Lock()
	samples := b.samplesLocked()
	b.mu.Unlock()

	var s BuildStats
	if len(samples) == 0 {
		return s
	}
	var total time.Duration
	for _, d := range samples {
		total += d
		s.Max = max(s.Max, d)
	}
	s.Count = len(samples)
	s.Last = samples[len(samples)-1]
	s.Average = total / time.Duration(len(samples))
	return s
}

// BuildStats summarizes the builds held by a BuildTimingBuffer.
type BuildStats struct {
	Count   int
	Last    time.Duration
	Average time.Duration
	Max     time.Duration
}

func (s BuildStats) String() string {
	switch s.Count {
	case 0:
		return "no builds"
	case 1:
		return fmt.Sprintf("1 build in %s", s.Last)
	}
	return fmt.Sprintf("%d builds, last %s, avg %s, max %s", s.Count, s.Last, s.Average, s.Max)
}
