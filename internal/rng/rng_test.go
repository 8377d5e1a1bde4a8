package rng

import (
	"math"
	"testing"
)

func TestSplitMixDeterministic(t *testing.T) {
	a := NewSplitMix(42)
	b := NewSplitMix(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntRange(0, 1000), b.IntRange(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestSplitMixSeedsDiffer(t *testing.T) {
	a := NewSplitMix(1)
	b := NewSplitMix(2)
	same := 0
	for i := 0; i < 50; i++ {
		if a.IntRange(0, 1<<30) == b.IntRange(0, 1<<30) {
			same++
		}
	}
	if same == 50 {
		t.Errorf("different seeds produced identical streams")
	}
}

func TestRangesInclusive(t *testing.T) {
	sources := map[string]Source{
		"splitmix": NewSplitMix(7),
		"math":     NewMath(7),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			seenLo, seenHi := false, false
			for i := 0; i < 2000; i++ {
				v := src.IntRange(3, 6)
				if v < 3 || v > 6 {
					t.Fatalf("IntRange(3,6) = %d", v)
				}
				seenLo = seenLo || v == 3
				seenHi = seenHi || v == 6
				f := src.FloatRange(-1, 1)
				if f < -1 || f >= 1 {
					t.Fatalf("FloatRange(-1,1) = %v", f)
				}
			}
			if !seenLo || !seenHi {
				t.Errorf("bounds not reached: lo=%v hi=%v", seenLo, seenHi)
			}
			if v := src.IntRange(5, 2); v < 2 || v > 5 {
				t.Errorf("swapped bounds gave %d", v)
			}
			if v := src.IntRange(4, 4); v != 4 {
				t.Errorf("IntRange(4,4) = %d", v)
			}
		})
	}
}

func TestIntRangeWideSpans(t *testing.T) {
	sources := map[string]Source{
		"splitmix": NewSplitMix(9),
		"math":     NewMath(9),
	}
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"full", math.MinInt, math.MaxInt},
		{"negative half and more", math.MinInt, 10},
		{"positive half and more", -10, math.MaxInt},
	}
	for name, src := range sources {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				for i := 0; i < 200; i++ {
					if v := src.IntRange(tt.lo, tt.hi); v < tt.lo || v > tt.hi {
						t.Fatalf("IntRange(%d,%d) = %d", tt.lo, tt.hi, v)
					}
				}
			})
		}
	}
}

func TestScriptedCyclesAndClamps(t *testing.T) {
	s := &Scripted{Ints: []int{1, 99}, Floats: []float32{0.5}}
	if v := s.IntRange(0, 10); v != 1 {
		t.Errorf("first = %d, want 1", v)
	}
	if v := s.IntRange(0, 10); v != 10 {
		t.Errorf("second = %d, want clamped 10", v)
	}
	if v := s.IntRange(0, 10); v != 1 {
		t.Errorf("third = %d, want cycled 1", v)
	}
	if f := s.FloatRange(2, 3); f != 2 {
		t.Errorf("float = %v, want clamped 2", f)
	}
	empty := &Scripted{}
	if v := empty.IntRange(4, 9); v != 4 {
		t.Errorf("empty script = %d, want lo", v)
	}
}
