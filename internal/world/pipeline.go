package world

import (
	"terrain-gen/internal/config"
	"terrain-gen/internal/profiling"
)

// WorldPlan describes a full world build.
type WorldPlan struct {
	WorldSizeMeters int
	FlatAreaCount   int
	FlatAreaMin     int // chunks
	FlatAreaMax     int // chunks
	Generate        GenerateOptions
}

// DefaultWorldPlan returns three flat areas of 2 to 4 chunks with the
// default generation options.
func DefaultWorldPlan(worldSizeMeters int) WorldPlan {
	return WorldPlan{
		WorldSizeMeters: worldSizeMeters,
		FlatAreaCount:   3,
		FlatAreaMin:     2,
		FlatAreaMax:     4,
		Generate:        DefaultGenerateOptions(),
	}
}

// PlanFromConfig builds a WorldPlan from a terrain config.
func PlanFromConfig(t config.Terrain) WorldPlan {
	return WorldPlan{
		WorldSizeMeters: t.WorldSizeMeters,
		FlatAreaCount:   t.FlatAreas.Count,
		FlatAreaMin:     t.FlatAreas.MinSize,
		FlatAreaMax:     t.FlatAreas.MaxSize,
		Generate: GenerateOptions{
			Layers:           t.Layers,
			SmoothIterations: t.SmoothIterations,
		},
	}
}

// WorldReport summarizes a BuildWorld run.
type WorldReport struct {
	FlatAreas         []HillSetup
	FlatAreaFallbacks int
	Structures        int
}

// BuildWorld reserves flat areas, generates the terrain, paints and
// classifies terrain types and hands the flat-area chunks to placer, which
// may be nil.
func (g *Grid) BuildWorld(plan WorldPlan, placer StructurePlacer) WorldReport {
	defer profiling.Track("world.BuildWorld")()
	chunkRange := 0
	if g.units.ChunkSize > 0 {
		chunkRange = plan.WorldSizeMeters / g.units.ChunkSize
	}

	areas, fallbacks := g.CreateFlatAreas(plan.FlatAreaCount, plan.FlatAreaMin, plan.FlatAreaMax, chunkRange)
	g.GenerateWith(plan.WorldSizeMeters, areas, plan.Generate)
	g.RandomizeTerrainTypes()
	g.ApplySpecialTerrainTypesByHeight()

	return WorldReport{
		FlatAreas:         areas,
		FlatAreaFallbacks: fallbacks,
		Structures:        g.PlaceStructures(areas, placer),
	}
}
