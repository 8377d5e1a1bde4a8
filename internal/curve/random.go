package curve

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/rng"
)

// maxRandomAnchors bounds the random walks below in case the direction
// never reaches the X limit.
const maxRandomAnchors = 4096

// SmoothAnchors pulls steep neighbours closer on Y. Whenever the Y distance
// between two consecutive anchors exceeds half their X distance, the second
// anchor moves 10% of the Y distance towards the first without crossing it.
// A new slice is returned.
func SmoothAnchors(anchors []mgl32.Vec2) []mgl32.Vec2 {
	const decrease = 0.1
	out := append([]mgl32.Vec2(nil), anchors...)
	for i := 1; i < len(out); i++ {
		a := out[i-1]
		b := &out[i]
		distX := abs(a.X() - b.X())
		distY := abs(a.Y() - b.Y())
		if distX/2 >= distY {
			continue
		}
		if a.Y() < b.Y() {
			b[1] = max(b.Y()-distY*decrease, a.Y())
		} else if a.Y() > b.Y() {
			b[1] = min(b.Y()+distY*decrease, a.Y())
		}
	}
	return out
}

// AfterSmoothHeight refits a dense 3D polyline from every skip-th vertex and
// writes only the fitted Z values back. X and Y of the input are kept.
func AfterSmoothHeight(polyline []mgl32.Vec3, step float32, skip int) []mgl32.Vec3 {
	skip = max(skip, -skip, 1)
	out := append([]mgl32.Vec3(nil), polyline...)
	if len(polyline) == 0 {
		return out
	}

	var anchors []mgl32.Vec3
	for i := 0; i < len(polyline); i += skip {
		anchors = append(anchors, polyline[i])
		if i+skip >= len(polyline) && i != len(polyline)-1 {
			anchors = append(anchors, polyline[len(polyline)-1])
		}
	}

	fitted := Compute3D(anchors, step)
	for i := 0; i < len(fitted) && i < len(out); i++ {
		out[i][2] = fitted[i].Z()
	}
	return out
}

// RandomCurve walks along X from start with random forward offsets and a
// random Y offset in [0, yRange] whose sign bounces off the [0, maxXY] band,
// then smooths the walk. Walking stops once X reaches maxXY.
func RandomCurve(src rng.Source, start mgl32.Vec2, step, minDX, maxDX, yRange, maxXY float32) []mgl32.Vec2 {
	if maxDX <= 0 {
		return nil
	}
	if minDX <= 0 {
		minDX = maxDX / 2
	}

	points := []mgl32.Vec2{start}
	for len(points) < maxRandomAnchors {
		latest := points[len(points)-1]
		if latest.X() >= maxXY {
			break
		}
		offset := mgl32.Vec2{src.FloatRange(minDX, maxDX), src.FloatRange(0, yRange)}
		points = append(points, validatedAnchor(src, latest, offset, maxXY))
	}
	return Compute(points, step)
}

// validatedAnchor flips the Y offset when the candidate would leave the band
// and otherwise flips it at random.
func validatedAnchor(src rng.Source, latest, offset mgl32.Vec2, maxY float32) mgl32.Vec2 {
	candidate := latest.Add(offset)
	edge := false
	if candidate.Y() >= maxY {
		offset[1] = -abs(offset.Y())
		edge = true
	}
	if candidate.Y() <= 0 {
		offset[1] = abs(offset.Y())
		edge = true
	}
	if !edge {
		r := src.IntRange(1, 100)
		m := src.IntRange(2, 4)
		if r%m == 0 {
			offset[1] = -offset.Y()
		}
	}
	return latest.Add(offset)
}

// RandomAngleCurve walks from start in steps of [minDist, maxDist], turning
// by a random yaw in [minAngle, maxAngle] degrees each step. The turn side is
// the one that keeps Y inside [0, maxXY) if possible.
func RandomAngleCurve(src rng.Source, start mgl32.Vec2, step, minDist, maxDist, minAngle, maxAngle, maxXY float32) []mgl32.Vec2 {
	minAngle, maxAngle = abs(minAngle), abs(maxAngle)
	integrated := mgl32.Ident2()

	points := []mgl32.Vec2{start}
	for len(points) < maxRandomAnchors {
		latest := points[len(points)-1]
		if latest.X() >= maxXY {
			break
		}
		dir := mgl32.Vec2{src.FloatRange(minDist, maxDist), 0}
		rad := mgl32.DegToRad(src.FloatRange(minAngle, maxAngle))

		rotA := integrated.Mul2(mgl32.Rotate2D(rad))
		rotB := integrated.Mul2(mgl32.Rotate2D(-rad))
		a := latest.Add(rotA.Mul2x1(dir))
		if a.Y() >= 0 && a.Y() < maxXY {
			integrated = rotA
			points = append(points, a)
			continue
		}
		integrated = rotB
		points = append(points, latest.Add(rotB.Mul2x1(dir)))
	}
	return Compute(points, step)
}
