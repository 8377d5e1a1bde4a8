package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/xlab/closer"

	"terrain-gen/internal/config"
	"terrain-gen/internal/meshing"
	"terrain-gen/internal/profiling"
	"terrain-gen/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "terrain YAML file (defaults when empty)")
		seed       = flag.Int64("seed", 0, "override the configured seed when non-zero")
		worldSize  = flag.Int("world", 0, "override the world size in meters when non-zero")
		steps      = flag.Int("steps", 200, "observer steps to simulate")
		stepMeters = flag.Float64("step", 10, "observer step length in meters")
		tickBudget = flag.Duration("tick-budget", 4*time.Millisecond, "warn when a tick takes longer")
		outDir     = flag.String("out", "", "write preview images into this directory")
		scale      = flag.Int("scale", 4, "preview image scale factor")
		rate       = flag.Int("rate", 0, "observer steps per second, 0 runs unthrottled")
		workers    = flag.Int("workers", runtime.NumCPU(), "meshing worker goroutines")
	)
	flag.Parse()

	defer closer.Close()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *worldSize != 0 {
		cfg.WorldSizeMeters = *worldSize
	}
	if err := config.Validate(cfg); err != nil {
		closer.Fatalln(err)
	}
	config.SetActivationHalfExtent(cfg.ActivationHalfExtent)
	config.SetShapeSize(cfg.ShapeSize)

	sinks := newSinks()
	pool := meshing.NewPool(*workers, 64, sinks.addMesh)
	grid := world.NewGridFromConfig(cfg,
		world.WithGeometryBuilder(pool),
		world.WithWaterBuilder(sinks),
	)
	closer.Bind(func() {
		pool.Shutdown()
		log.Printf("summary: %s", sinks.summary())
	})

	start := time.Now()
	report := grid.BuildWorld(world.PlanFromConfig(cfg), sinks)
	log.Printf("built %dx%d chunks in %s (seed %d, %d flat areas, %d fallbacks, %d structures)",
		grid.Size(), grid.Size(), time.Since(start).Round(time.Millisecond), cfg.Seed,
		len(report.FlatAreas), report.FlatAreaFallbacks, report.Structures)
	log.Printf("generation profile: %s", profiling.TopN(6))

	walk := newWalkLoop(grid, float32(*stepMeters)*float32(cfg.OneMeter), *tickBudget)
	walk.limiter = newRateLimiter(*rate)
	walk.Run(*steps)

	if *outDir != "" {
		if err := writePreviews(*outDir, grid, cfg.Seed, *scale); err != nil {
			closer.Fatalln(err)
		}
	}
}

func loadConfig(path string) (config.Terrain, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
