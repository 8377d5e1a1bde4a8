// Package physics answers ground queries against a height field.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/profiling"
)

// noGround is passed as the probe height. Ground implementations return the
// probe height unchanged outside their bounds, so getting it back means
// there is no terrain under the probe.
const noGround = -math.MaxFloat32

// DefaultStep is the ray marching distance in world units.
const DefaultStep float32 = 50

// refineSteps bisects between the last point above and the first point
// below the ground.
const refineSteps = 8

// Ground reports the terrain height under a world position and returns
// pos.Z unchanged where there is no terrain.
type Ground interface {
	HeightAt(pos mgl32.Vec3) float32
}

// RaycastResult stores the result of a raycast.
type RaycastResult struct {
	Position mgl32.Vec3
	Distance float32
	Hit      bool
}

// Raycast marches from start along direction and returns the first point at
// or below the ground between minDist and maxDist. A non-positive step uses
// DefaultStep.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist, step float32, ground Ground) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	if step <= 0 {
		step = DefaultStep
	}
	dir := direction.Normalize()
	steps := int(maxDist / step)

	prev := float32(-1)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * step
		if dist < minDist {
			continue
		}
		pos := start.Add(dir.Mul(dist))
		if below(pos, ground) {
			if prev >= 0 {
				dist = refine(start, dir, prev, dist, ground)
			}
			return RaycastResult{Position: start.Add(dir.Mul(dist)), Distance: dist, Hit: true}
		}
		prev = dist
	}
	return RaycastResult{}
}

func below(pos mgl32.Vec3, ground Ground) bool {
	h, ok := FindGroundLevel(pos.X(), pos.Y(), ground)
	return ok && pos.Z() <= h
}

func refine(start, dir mgl32.Vec3, above, under float32, ground Ground) float32 {
	for _i := 0; _i < refineSteps; _i++ {
		mid := (above + under) / 2
		if below(start.Add(dir.Mul(mid)), ground) {
			under = mid
		} else {
			above = mid
		}
	}
	return under
}

// FindGroundLevel returns the terrain height at (x, y) and whether there is
// terrain there at all.
func FindGroundLevel(x, y float32, ground Ground) (float32, bool) {
	h := ground.HeightAt(mgl32.Vec3{x, y, noGround})
	return h, h != noGround
}

// Snap moves pos onto the ground. Positions without terrain are returned
// unchanged.
func Snap(pos mgl32.Vec3, ground Ground) mgl32.Vec3 {
	if h, ok := FindGroundLevel(pos.X(), pos.Y(), ground); ok {
		pos[2] = h
	}
	return pos
}
