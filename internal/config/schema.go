package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const terrainSchemaURL = "terrain.schema.json"

const terrainSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["world_size_meters", "one_meter", "chunk_size", "max_height"],
  "properties": {
    "seed": {"type": "integer"},
    "world_size_meters": {"type": "integer", "minimum": 1},
    "one_meter": {"type": "integer", "minimum": 1},
    "chunk_size": {"type": "integer", "minimum": 1},
    "max_height": {"type": "number", "exclusiveMinimum": 0},
    "layers": {"type": "integer", "minimum": 0},
    "smooth_iterations": {"type": "integer", "minimum": 0},
    "hill_size_min": {"type": "integer", "minimum": 1},
    "snow_hill_lower_bound": {"type": "number"},
    "ocean_max_height": {"type": "number"},
    "activation_half_extent": {"type": "integer", "minimum": 1, "maximum": 32},
    "shape_size": {"type": "integer", "minimum": 2},
    "flat_areas": {
      "type": "object",
      "properties": {
        "count": {"type": "integer", "minimum": 0},
        "min_size": {"type": "integer", "minimum": 1},
        "max_size": {"type": "integer", "minimum": 1},
        "forced_height": {"type": "number"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func terrainSchemaCompiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(terrainSchemaURL, terrainSchema)
	})
	return compiledSchema, schemaErr
}

// Validate checks t against the terrain schema and the cross-field rules the
// schema cannot express.
func Validate(t Terrain) error {
	s, err := terrainSchemaCompiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if t.FlatAreas.MinSize > t.FlatAreas.MaxSize {
		return fmt.Errorf("flat_areas: min_size %d > max_size %d", t.FlatAreas.MinSize, t.FlatAreas.MaxSize)
	}
	if t.ChunkRange() < 1 {
		return fmt.Errorf("world_size_meters %d smaller than one chunk of %dm", t.WorldSizeMeters, t.ChunkSize)
	}
	return nil
}
