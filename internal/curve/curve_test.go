package curve

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/rng"
)

func TestComputeCollinear(t *testing.T) {
	anchors := []mgl32.Vec2{{0, 0}, {50, 0}, {100, 0}}
	out := Compute(anchors, 10)

	if len(out) != 10 {
		t.Fatalf("Expected 10 samples, got %d", len(out))
	}
	if out[0].X() != 0 {
		t.Errorf("Expected first sample at X=0, got %v", out[0].X())
	}
	prev := float32(-1)
	for i, p := range out {
		if math.Abs(float64(p.Y())) > 1e-4 {
			t.Errorf("sample %d: Y=%v, want 0", i, p.Y())
		}
		if p.X() <= prev {
			t.Errorf("sample %d: X=%v not increasing after %v", i, p.X(), prev)
		}
		prev = p.X()
	}
	if last := out[len(out)-1].X(); last < 80 || last > 100 {
		t.Errorf("Expected last X close to 100, got %v", last)
	}
}

func TestComputeDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		anchors []mgl32.Vec2
		step    float32
	}{
		{"none", nil, 10},
		{"one", []mgl32.Vec2{{0, 0}}, 10},
		{"two", []mgl32.Vec2{{0, 0}, {10, 5}}, 10},
		{"zero step", []mgl32.Vec2{{0, 0}, {10, 5}, {20, 0}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := Compute(tt.anchors, tt.step); len(out) != 0 {
				t.Errorf("Expected empty output, got %d samples", len(out))
			}
		})
	}
}

func TestComputeNegativeStepUsesMagnitude(t *testing.T) {
	anchors := []mgl32.Vec2{{0, 0}, {50, 0}, {100, 0}}
	var s Smoother
	out := s.Compute(anchors, -10)
	if len(out) != 10 {
		t.Errorf("Expected 10 samples, got %d", len(out))
	}
	if s.Step() != 10 {
		t.Errorf("Expected stored step 10, got %v", s.Step())
	}
}

func TestComputeDoesNotMutateAnchors(t *testing.T) {
	anchors := []mgl32.Vec2{{0, 0}, {100, 300}, {200, 50}, {300, 0}}
	orig := append([]mgl32.Vec2(nil), anchors...)
	_ = Compute(anchors, 25)
	for i := range anchors {
		if anchors[i] != orig[i] {
			t.Fatalf("anchor %d changed: %v -> %v", i, orig[i], anchors[i])
		}
	}
}

func TestComputePassesThroughInteriorAnchors(t *testing.T) {
	anchors := []mgl32.Vec2{{0, 0}, {100, 300}, {200, 50}, {300, 120}}
	out := Compute(anchors, 100)
	// one sample per segment, each at the segment start
	if len(out) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(out))
	}
	for i := 0; i < 3; i++ {
		if !out[i].ApproxEqualThreshold(anchors[i], 1e-3) {
			t.Errorf("sample %d = %v, want anchor %v", i, out[i], anchors[i])
		}
	}
}

func TestContinuityIsC1(t *testing.T) {
	anchors := []mgl32.Vec2{{0, 10}, {100, 80}, {200, 20}, {300, 60}, {400, 0}}
	pts := continuity(anchors)
	if len(pts) != 3*len(anchors)-2 {
		t.Fatalf("Expected %d control points, got %d", 3*len(anchors)-2, len(pts))
	}
	for off := 3; off+1 < len(pts); off += 3 {
		in := pts[off].Sub(pts[off-1])
		out := pts[off+1].Sub(pts[off])
		if !in.ApproxEqualThreshold(out, 1e-3) {
			t.Errorf("tangent mismatch at %d: in %v out %v", off, in, out)
		}
	}
}

func TestContinuityEntryTangent(t *testing.T) {
	anchors := []mgl32.Vec2{{0, 0}, {100, 40}, {200, 0}}
	pts := continuity(anchors)
	// direction (100,40) with tripled Y, scaled by 0.25
	want := mgl32.Vec2{25, 30}
	if !pts[1].ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("entry tangent = %v, want %v", pts[1], want)
	}
}

func TestCubicEndpoints(t *testing.T) {
	a, b, c, d := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 2}, mgl32.Vec2{3, 2}, mgl32.Vec2{4, 0}
	if got := Cubic(a, b, c, d, 0); got != a {
		t.Errorf("Cubic(0) = %v, want %v", got, a)
	}
	if got := Cubic(a, b, c, d, 1); !got.ApproxEqual(d) {
		t.Errorf("Cubic(1) = %v, want %v", got, d)
	}
	mid := Cubic(a, b, c, d, 0.5)
	if !mid.ApproxEqualThreshold(mgl32.Vec2{2, 1.5}, 1e-5) {
		t.Errorf("Cubic(0.5) = %v, want (2,1.5)", mid)
	}
}

func TestCompute3DRecombines(t *testing.T) {
	anchors := []mgl32.Vec3{{0, 0, 0}, {100, 50, 200}, {200, 100, 0}}
	out := Compute3D(anchors, 20)
	xy := Compute([]mgl32.Vec2{{0, 0}, {100, 50}, {200, 100}}, 20)
	xz := Compute([]mgl32.Vec2{{0, 0}, {100, 200}, {200, 0}}, 20)

	if len(out) != len(xy) || len(out) != len(xz) {
		t.Fatalf("length mismatch: 3d=%d xy=%d xz=%d", len(out), len(xy), len(xz))
	}
	for i := range out {
		if out[i].X() != xy[i].X() || out[i].Y() != xy[i].Y() || out[i].Z() != xz[i].Y() {
			t.Errorf("sample %d = %v, want (%v,%v,%v)", i, out[i], xy[i].X(), xy[i].Y(), xz[i].Y())
		}
	}
	if len(Compute3D(anchors[:2], 20)) != 0 {
		t.Errorf("Expected empty output for two anchors")
	}
}

func TestSmoothAnchorsPullsSteepNeighbours(t *testing.T) {
	in := []mgl32.Vec2{{0, 0}, {10, 100}, {20, 100}, {30, 104}}
	out := SmoothAnchors(in)

	if out[1].Y() != 90 {
		t.Errorf("Expected steep anchor pulled to 90, got %v", out[1].Y())
	}
	if out[3].Y() != 104 {
		t.Errorf("Expected gentle anchor unchanged, got %v", out[3].Y())
	}
	if in[1].Y() != 100 {
		t.Errorf("input mutated")
	}
}

func TestAfterSmoothHeightKeepsXY(t *testing.T) {
	var line []mgl32.Vec3
	for i := 0; i <= 20; i++ {
		z := float32(0)
		if i == 10 {
			z = 500
		}
		line = append(line, mgl32.Vec3{float32(i * 100), 7, z})
	}
	out := AfterSmoothHeight(line, 100, 5)
	if len(out) != len(line) {
		t.Fatalf("length changed: %d -> %d", len(line), len(out))
	}
	for i := range out {
		if out[i].X() != line[i].X() || out[i].Y() != line[i].Y() {
			t.Fatalf("vertex %d XY changed: %v -> %v", i, line[i], out[i])
		}
	}
	if out[10].Z() != 500 {
		t.Errorf("anchor vertex should keep its height, got %v", out[10].Z())
	}
	if out[9].Z() <= 0 {
		t.Errorf("neighbour of peak should be raised by the fit, got %v", out[9].Z())
	}
}

func TestRandomCurveStaysInBand(t *testing.T) {
	src := rng.NewSplitMix(3)
	out := RandomCurve(src, mgl32.Vec2{0, 500}, 50, 100, 300, 200, 1000)
	if len(out) == 0 {
		t.Fatal("Expected samples")
	}
	for i := 1; i < len(out); i++ {
		if out[i].X() < out[i-1].X() {
			t.Fatalf("X decreased at %d: %v < %v", i, out[i].X(), out[i-1].X())
		}
	}
	if RandomCurve(src, mgl32.Vec2{}, 10, 0, 0, 10, 100) != nil {
		t.Errorf("Expected nil for zero forward offset")
	}
}

func TestRandomAngleCurveProduces(t *testing.T) {
	src := rng.NewSplitMix(11)
	out := RandomAngleCurve(src, mgl32.Vec2{0, 500}, 25, 100, 200, 0, 20, 1000)
	if len(out) == 0 {
		t.Fatal("Expected samples")
	}
	if out[0] != (mgl32.Vec2{0, 500}) {
		t.Errorf("Expected curve to start at the start point, got %v", out[0])
	}
}

func BenchmarkCompute(b *testing.B) {
	anchors := make([]mgl32.Vec2, 50)
	for i := range anchors {
		anchors[i] = mgl32.Vec2{float32(i * 2000), float32((i * 37) % 500)}
	}
	var s Smoother
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Compute(anchors, 100)
	}
}
