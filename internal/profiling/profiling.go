package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight timing buckets for generation and per-tick activation work.

type bucket struct {
	total time.Duration
	calls int
}

var (
	mu      sync.Mutex
	buckets = make(map[string]bucket)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.Generate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		b := buckets[name]
		b.total += d
		b.calls++
		buckets[name] = b
		mu.Unlock()
	}
}

// ResetFrame clears all buckets. The CLI calls it before each observer step.
func ResetFrame() {
	mu.Lock()
	clear(buckets)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated durations.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(buckets))
	for k, b := range buckets {
		out[k] = b.total
	}
	return out
}

// Calls returns how often name was tracked since the last reset.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return buckets[name].calls
}

// SumWithPrefix adds up every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, b := range buckets {
		if strings.HasPrefix(k, prefix) {
			sum += b.total
		}
	}
	return sum
}

// TopN formats the n most expensive buckets.
// Example: "world.Smooth:42.1ms(1), world.Tick:3.2ms(12)"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, list[i].name+":"+formatMs(ms)+"("+strconv.Itoa(Calls(list[i].name))+")")
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	// one decimal, drop ".0"
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
