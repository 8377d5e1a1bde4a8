package world

import "testing"

func TestCmToMeterRounds(t *testing.T) {
	u := DefaultUnits()
	tests := []struct {
		cm, want int
	}{
		{0, 0},
		{49, 0},
		{50, 1},
		{149, 1},
		{150, 2},
		{-49, 0},
		{-50, -1},
		{2000, 20},
	}
	for _, tt := range tests {
		if got := u.CmToMeter(tt.cm); got != tt.want {
			t.Errorf("CmToMeter(%d) = %d, want %d", tt.cm, got, tt.want)
		}
	}
}

func TestChunkIndexRoundTrip(t *testing.T) {
	u := DefaultUnits()
	for chunk := 0; chunk < 10; chunk++ {
		for inner := 0; inner < u.ChunkSize; inner++ {
			cm := u.MeterToCm(chunk*u.ChunkSize + inner)
			if got := u.CmToChunkIndex(cm); got != chunk {
				t.Fatalf("CmToChunkIndex(%d) = %d, want %d", cm, got, chunk)
			}
			if got := u.CmToInnerChunkIndex(cm); got != inner {
				t.Fatalf("CmToInnerChunkIndex(%d) = %d, want %d", cm, got, inner)
			}
			if got := u.MeterToInnerChunkIndex(chunk*u.ChunkSize + inner); got != inner {
				t.Fatalf("MeterToInnerChunkIndex = %d, want %d", got, inner)
			}
		}
	}
}

func TestChunkCm(t *testing.T) {
	if got := DefaultUnits().ChunkCm(); got != 2000 {
		t.Errorf("Expected 2000, got %d", got)
	}
}
