package main

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/physics"
	"terrain-gen/internal/profiling"
	"terrain-gen/internal/world"
)

// eyeHeight lifts the look-ahead ray above the observer's feet.
const eyeHeight float32 = 170

// walkLoop moves an observer diagonally across the grid and ticks chunk
// activation once per step, like a frame loop would.
type walkLoop struct {
	grid     *world.Grid
	observer mgl32.Vec3
	dir      mgl32.Vec3
	budget   time.Duration
	limiter  *rateLimiter

	activated  int
	slow       int
	obstructed int
	tickTime   time.Duration
}

func newWalkLoop(g *world.Grid, stepCm float32, budget time.Duration) *walkLoop {
	return &walkLoop{
		grid:    g,
		dir:     mgl32.Vec3{1, 1, 0}.Normalize().Mul(stepCm),
		budget:  budget,
		limiter: newRateLimiter(0),
	}
}

// Run performs steps ticks. The observer turns around at the grid edge.
func (w *walkLoop) Run(steps int) {
	lastReport := time.Now()
	for i := 0; i < steps; i++ {
		w.limiter.Wait()
		w.step()
		if time.Since(lastReport) >= time.Second {
			log.Printf("step %d: %d chunks active", i, w.activated)
			lastReport = time.Now()
		}
	}
	log.Printf("walk: %d steps, %d chunks activated, %s in ticks, %d slow ticks, %d steps facing a slope",
		steps, w.activated, w.tickTime.Round(time.Microsecond), w.slow, w.obstructed)
}

func (w *walkLoop) step() {
	profiling.ResetFrame()

	w.observer = w.observer.Add(w.dir)
	edge := float32(w.grid.Size() * w.grid.Units().ChunkCm())
	if w.observer.X() < 0 || w.observer.X() > edge || w.observer.Y() < 0 || w.observer.Y() > edge {
		w.dir = w.dir.Mul(-1)
		w.observer = w.observer.Add(w.dir)
	}
	w.observer = physics.Snap(w.observer, w.grid)

	eye := w.observer.Add(mgl32.Vec3{0, 0, eyeHeight})
	if hit := physics.Raycast(eye, w.dir, 0, w.dir.Len(), 0, w.grid); hit.Hit {
		w.obstructed++
	}

	w.activated += w.grid.Tick(w.observer)

	dur := profiling.SumWithPrefix("world.Tick")
	w.tickTime += dur
	if dur > w.budget {
		w.slow++
		log.Printf("tick took too long: %.2fms (budget: %.2fms)",
			float64(dur.Nanoseconds())/1e6, float64(w.budget.Nanoseconds())/1e6)
	}
}
