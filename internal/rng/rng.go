// Package rng provides the random sources used by terrain generation.
//
// Every consumer depends on the Source interface so tests can swap in a
// Scripted source and get byte-identical terrain.
package rng

import (
	"math/rand"
)

// Source yields uniform integers and floats in a closed range.
type Source interface {
	// IntRange returns a value in [lo, hi]. Swapped bounds are accepted.
	IntRange(lo, hi int) int
	// FloatRange returns a value in [lo, hi). Swapped bounds are accepted.
	FloatRange(lo, hi float32) float32
}

// SplitMix is a deterministic Source seeded by a single int64.
type SplitMix struct {
	state uint64
}

// NewSplitMix creates a SplitMix64 generator for seed.
func NewSplitMix(seed int64) *SplitMix {
	return &SplitMix{state: uint64(seed) * 0x9E3779B97F4A7C15}
}

func (s *SplitMix) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	v := s.state
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// IntRange implements Source.
func (s *SplitMix) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	// wraps to zero only for the full int range
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int(s.next())
	}
	return int(uint64(lo) + s.next()%span)
}

// FloatRange implements Source.
func (s *SplitMix) FloatRange(lo, hi float32) float32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	// 24 bits of mantissa
	f := float32(s.next()>>40) / float32(1<<24)
	return lo + f*(hi-lo)
}

// Math adapts a *rand.Rand to Source.
type Math struct {
	r *rand.Rand
}

// NewMath returns a Source backed by math/rand with the given seed.
func NewMath(seed int64) *Math {
	return &Math{r: rand.New(rand.NewSource(seed))}
}

// IntRange implements Source.
func (m *Math) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if span := hi - lo + 1; span > 0 {
		return lo + m.r.Intn(span)
	}
	// span overflows int: at least half of all draws land in range
	for {
		if v := int(m.r.Uint64()); v >= lo && v <= hi {
			return v
		}
	}
}

// FloatRange implements Source.
func (m *Math) FloatRange(lo, hi float32) float32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + m.r.Float32()*(hi-lo)
}

// Scripted replays fixed values, cycling when exhausted. Values outside the
// requested range are clamped into it. Meant for tests.
type Scripted struct {
	Ints   []int
	Floats []float32

	ii, fi int
}

// IntRange implements Source.
func (s *Scripted) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if len(s.Ints) == 0 {
		return lo
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return max(lo, min(hi, v))
}

// FloatRange implements Source.
func (s *Scripted) FloatRange(lo, hi float32) float32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if len(s.Floats) == 0 {
		return lo
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return max(lo, min(hi, v))
}
