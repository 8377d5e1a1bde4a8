// Package curve fits tangent-continuous piecewise cubic bezier curves
// through sparse anchors and samples them densely along the X axis.
package curve

import (
	"github.com/go-gl/mathgl/mgl32"
)

// blend scales the chord between anchors into tangent control points.
const blend float32 = 0.25

// Smoother samples continuity curves. The zero value is ready to use and a
// Smoother can be reused for any number of curves.
type Smoother struct {
	step float32
}

// Step returns the sampling distance used by the last successful Compute.
func (s *Smoother) Step() float32 {
	return s.step
}

// Compute builds a C1 continuous curve through anchors and samples it every
// step units along X. Anchors must be ordered by X. Fewer than three anchors
// or a zero step yield an empty result. The anchors are not modified.
func (s *Smoother) Compute(anchors []mgl32.Vec2, step float32) []mgl32.Vec2 {
	if len(anchors) < 3 {
		return nil
	}
	step = abs(step)
	if step == 0 {
		return nil
	}
	s.step = step

	return sample(continuity(anchors), step)
}

// Compute is a convenience wrapper around a throwaway Smoother.
func Compute(anchors []mgl32.Vec2, step float32) []mgl32.Vec2 {
	var s Smoother
	return s.Compute(anchors, step)
}

// Compute3D smooths the XY and XZ projections of anchors independently and
// recombines them. When one projection yields fewer samples its last sample
// is repeated.
func (s *Smoother) Compute3D(anchors []mgl32.Vec3, step float32) []mgl32.Vec3 {
	xy := make([]mgl32.Vec2, len(anchors))
	xz := make([]mgl32.Vec2, len(anchors))
	for i, a := range anchors {
		xy[i] = mgl32.Vec2{a.X(), a.Y()}
		xz[i] = mgl32.Vec2{a.X(), a.Z()}
	}

	outA := s.Compute(xy, step)
	outB := s.Compute(xz, step)
	if len(outA) == 0 || len(outB) == 0 {
		return nil
	}

	n := max(len(outA), len(outB))
	out := make([]mgl32.Vec3, n)
	for i := 0; i < n; i++ {
		a := outA[min(i, len(outA)-1)]
		b := outB[min(i, len(outB)-1)]
		out[i] = mgl32.Vec3{a.X(), a.Y(), b.Y()}
	}
	return out
}

// Compute3D is a convenience wrapper around a throwaway Smoother.
func Compute3D(anchors []mgl32.Vec3, step float32) []mgl32.Vec3 {
	var s Smoother
	return s.Compute3D(anchors, step)
}

// continuity expands anchors into bezier control points laid out as
// p0 p1 p2 p3 p4 p5 p6 ... where every fourth point is shared between two
// consecutive segments (stride 3).
func continuity(anchors []mgl32.Vec2) []mgl32.Vec2 {
	curve := make([]mgl32.Vec2, 0, 3*len(anchors)+1)

	p0, p3 := anchors[0], anchors[1]
	dir := p3.Sub(p0)
	// no left neighbour: exaggerate the entry slope
	entry := dir.Add(mgl32.Vec2{0, dir.Y() * 2})
	curve = append(curve, p0, p0.Add(entry.Mul(blend)))
	curve = appendTangents(curve, p0, p3)

	for i := 2; i < len(anchors)-1; i++ {
		prev := curve[len(curve)-2]
		curve = appendTangents(curve, prev, anchors[i])
	}

	last := curve[len(curve)-2]
	final := anchors[len(anchors)-1]
	exit := final.Sub(last)
	return append(curve, final.Sub(exit.Mul(blend)), final)
}

// appendTangents pushes the incoming tangent of next, next itself and the
// outgoing tangent that becomes p1 of the following segment.
func appendTangents(curve []mgl32.Vec2, from, next mgl32.Vec2) []mgl32.Vec2 {
	dir := next.Sub(from)
	return append(curve,
		next.Sub(dir.Mul(blend)),
		next,
		next.Add(dir.Mul(blend)),
	)
}

func sample(points []mgl32.Vec2, step float32) []mgl32.Vec2 {
	var out []mgl32.Vec2
	for off := 0; off+3 < len(points); off += 3 {
		out = sampleSegment(out, points[off], points[off+1], points[off+2], points[off+3], step)
	}
	return out
}

// sampleSegment walks the segment's X span in step increments so output
// density is uniform in space rather than in t. The end point is left to the
// next segment.
func sampleSegment(out []mgl32.Vec2, p0, p1, p2, p3 mgl32.Vec2, step float32) []mgl32.Vec2 {
	span := abs(p3.X() - p0.X())
	for s := float32(0); s < span; s += step {
		out = append(out, Cubic(p0, p1, p2, p3, s/span))
	}
	return out
}

// Cubic evaluates a cubic bezier at t with De Casteljau's reduction.
func Cubic(a, b, c, d mgl32.Vec2, t float32) mgl32.Vec2 {
	ab := lerp(a, b, t)
	bc := lerp(b, c, t)
	cd := lerp(c, d, t)
	abc := lerp(ab, bc, t)
	bcd := lerp(bc, cd, t)
	return lerp(abc, bcd, t)
}

func lerp(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
