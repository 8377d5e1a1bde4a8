package world

// TerrainType classifies a chunk for the geometry builder.
type TerrainType uint8

const (
	Tropical TerrainType = iota
	Desert
	SnowHill
	Ocean
)

var terrainTypeNames = [...]string{
	Tropical: "tropical",
	Desert:   "desert",
	SnowHill: "snow_hill",
	Ocean:    "ocean",
}

func (t TerrainType) String() string {
	if int(t) < len(terrainTypeNames) {
		return terrainTypeNames[t]
	}
	return "unknown"
}

// PaintableTerrainTypes are the types the region painter chooses from.
// Ocean is only ever assigned by height.
var PaintableTerrainTypes = []TerrainType{Desert, Tropical, SnowHill}
