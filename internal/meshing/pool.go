package meshing

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/profiling"
	"terrain-gen/internal/world"
)

// Pool builds meshes on worker goroutines. It implements
// world.GeometryBuilder so the grid can hand chunks over without waiting.
type Pool struct {
	jobs   chan world.ChunkGeometry
	onMesh func(Mesh)
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts workers goroutines. onMesh is called from the workers and
// must be safe for concurrent use.
func NewPool(workers, queueSize int, onMesh func(Mesh)) *Pool {
	p := &Pool{
		jobs:   make(chan world.ChunkGeometry, max(queueSize, 0)),
		onMesh: onMesh,
	}
	for _i := 0; _i < max(workers, 1); _i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// BuildChunk implements world.GeometryBuilder. The height field is copied
// before it is queued. Blocks while the queue is full; chunks handed over
// after Shutdown are dropped.
func (p *Pool) BuildChunk(c world.ChunkGeometry) {
	c.HeightField = copyField(c.HeightField)

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	p.jobs <- c
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		var m Mesh
		func() {
			defer profiling.Track("meshing.BuildMesh")()
			m = BuildMesh(job)
		}()
		if p.onMesh != nil {
			p.onMesh(m)
		}
	}
}

// Shutdown finishes every queued chunk and stops the workers.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// QueueLength returns the number of chunks waiting for a worker.
func (p *Pool) QueueLength() int {
	return len(p.jobs)
}

func copyField(f [][]mgl32.Vec3) [][]mgl32.Vec3 {
	out := make([][]mgl32.Vec3, len(f))
	for i := range f {
		out[i] = append([]mgl32.Vec3(nil), f[i]...)
	}
	return out
}
