package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/rng"
)

// HillSetup describes a rectangle in chunk-index space and the height it
// adds to (or forces onto) the chunks inside. Targets are exclusive.
type HillSetup struct {
	xPos, yPos       int
	xTarget, yTarget int

	heightMin, heightMax int

	forcedHeight float32
	forced       bool
}

// NewHillSetup creates a hill starting at (posX, posY) spanning scaleX by
// scaleY chunks. Negative scales are taken absolute and zero becomes one.
func NewHillSetup(posX, posY, scaleX, scaleY, minAdd, maxAdd int) HillSetup {
	scaleX = positiveScale(scaleX)
	scaleY = positiveScale(scaleY)
	if maxAdd < minAdd {
		minAdd, maxAdd = maxAdd, minAdd
	}
	return HillSetup{
		xPos:      posX,
		yPos:      posY,
		xTarget:   posX + scaleX,
		yTarget:   posY + scaleY,
		heightMin: minAdd,
		heightMax: maxAdd,
	}
}

func positiveScale(s int) int {
	if s < 0 {
		s = -s
	}
	return max(s, 1)
}

func (h HillSetup) XPos() int    { return h.xPos }
func (h HillSetup) YPos() int    { return h.yPos }
func (h HillSetup) XTarget() int { return h.xTarget }
func (h HillSetup) YTarget() int { return h.yTarget }

// ScaleX returns the width in chunks.
func (h HillSetup) ScaleX() int { return h.xTarget - h.xPos }

// ScaleY returns the depth in chunks.
func (h HillSetup) ScaleY() int { return h.yTarget - h.yPos }

// Center returns the middle of the rectangle in world units at height zero.
func (h HillSetup) Center(u Units) mgl32.Vec3 {
	chunkCm := float32(u.ChunkCm())
	return mgl32.Vec3{
		float32(h.xPos+h.xTarget) / 2 * chunkCm,
		float32(h.yPos+h.yTarget) / 2 * chunkCm,
		0,
	}
}

// ForceHeight pins the hill to an absolute height.
func (h *HillSetup) ForceHeight(v float32) {
	h.forcedHeight = v
	h.forced = true
}

// HasForcedHeight reports whether ForceHeight was called.
func (h HillSetup) HasForcedHeight() bool { return h.forced }

// ForcedHeight returns the forced height, zero if none was set.
func (h HillSetup) ForcedHeight() float32 { return h.forcedHeight }

// HeightIfSetOrRandom returns the forced height if any, otherwise a delta
// drawn from [heightMin, heightMax].
func (h HillSetup) HeightIfSetOrRandom(src rng.Source) float32 {
	if h.forced {
		return h.forcedHeight
	}
	return float32(src.IntRange(h.heightMin, h.heightMax))
}

// OverlapsArea reports whether the rectangle starting at (startX, startY)
// with the given scale intersects this hill.
func (h HillSetup) OverlapsArea(startX, startY, scaleX, scaleY int) bool {
	return spansOverlap(h.xPos, h.xTarget, startX, startX+scaleX) &&
		spansOverlap(h.yPos, h.yTarget, startY, startY+scaleY)
}

// Overlaps reports whether two hills intersect.
func (h HillSetup) Overlaps(other HillSetup) bool {
	return h.OverlapsArea(other.xPos, other.yPos, other.ScaleX(), other.ScaleY())
}

// Encloses reports whether chunk (x, y) lies inside the hill.
func (h HillSetup) Encloses(x, y int) bool {
	return x >= h.xPos && x < h.xTarget && y >= h.yPos && y < h.yTarget
}

// EnclosesArea reports whether the half-open rectangle [fromX,toX) x
// [fromY,toY) lies completely inside the hill.
func (h HillSetup) EnclosesArea(fromX, fromY, toX, toY int) bool {
	return fromX >= h.xPos && toX <= h.xTarget && fromY >= h.yPos && toY <= h.yTarget
}

// ExtendBy grows the hill by n chunks on every side.
func (h *HillSetup) ExtendBy(n int) {
	h.xPos -= n
	h.yPos -= n
	h.xTarget += n
	h.yTarget += n
}

// spansOverlap intersects the half-open spans [a0,a1) and [b0,b1).
func spansOverlap(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}
