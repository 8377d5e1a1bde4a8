package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Terrain holds every tunable of a generation run. Loaded from YAML; the json
// tags exist for schema validation.
type Terrain struct {
	Seed            int64 `yaml:"seed" json:"seed"`
	WorldSizeMeters int   `yaml:"world_size_meters" json:"world_size_meters"`

	OneMeter  int     `yaml:"one_meter" json:"one_meter"`   // world units per meter
	ChunkSize int     `yaml:"chunk_size" json:"chunk_size"` // meters per chunk edge
	MaxHeight float32 `yaml:"max_height" json:"max_height"`

	Layers           int `yaml:"layers" json:"layers"`
	SmoothIterations int `yaml:"smooth_iterations" json:"smooth_iterations"`
	HillSizeMin      int `yaml:"hill_size_min" json:"hill_size_min"` // chunks

	SnowHillLowerBound float32 `yaml:"snow_hill_lower_bound" json:"snow_hill_lower_bound"`
	OceanMaxHeight     float32 `yaml:"ocean_max_height" json:"ocean_max_height"`

	FlatAreas FlatAreas `yaml:"flat_areas" json:"flat_areas"`

	ActivationHalfExtent int `yaml:"activation_half_extent" json:"activation_half_extent"`
	ShapeSize            int `yaml:"shape_size" json:"shape_size"`
}

// FlatAreas configures the building plots carved into the terrain.
type FlatAreas struct {
	Count        int     `yaml:"count" json:"count"`
	MinSize      int     `yaml:"min_size" json:"min_size"` // chunks
	MaxSize      int     `yaml:"max_size" json:"max_size"` // chunks
	ForcedHeight float32 `yaml:"forced_height" json:"forced_height"`
}

// Default returns the settings the generator was tuned with.
func Default() Terrain {
	return Terrain{
		Seed:               1337,
		WorldSizeMeters:    200,
		OneMeter:           100,
		ChunkSize:          20,
		MaxHeight:          10000,
		Layers:             20,
		SmoothIterations:   3,
		HillSizeMin:        2,
		SnowHillLowerBound: 1000,
		OceanMaxHeight:     150,
		FlatAreas: FlatAreas{
			Count:        3,
			MinSize:      2,
			MaxSize:      4,
			ForcedHeight: 100,
		},
		ActivationHalfExtent: 5,
		ShapeSize:            10,
	}
}

// ChunkRange returns the grid edge length in chunks.
func (t Terrain) ChunkRange() int {
	if t.ChunkSize <= 0 {
		return 0
	}
	return t.WorldSizeMeters / t.ChunkSize
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Terrain, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("terrain config %s: %w", path, err)
	}
	if err := Validate(t); err != nil {
		return t, fmt.Errorf("terrain config %s: %w", path, err)
	}
	return t, nil
}
