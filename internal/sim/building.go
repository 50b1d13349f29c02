package sim

import "time"

// DefaultMineCooldown is the minimum time between two successful mine pickups.
const DefaultMineCooldown = 3 * time.Second

// BuildingKind is the closed set of building variants.
type BuildingKind uint8

const (
	BuildingMine BuildingKind = iota
	BuildingProcessingPlant
	BuildingTramStation
)

// String returns the display label for the building kind.
func (k BuildingKind) String() string {
	switch k {
	case BuildingMine:
		return "Mine"
	case BuildingProcessingPlant:
		return "Processing Plant"
	case BuildingTramStation:
		return "Tram Station"
	default:
		return "Unknown"
	}
}

// ParseBuildingKind parses a building kind as written in scenario files.
func ParseBuildingKind(s string) (BuildingKind, bool) {
	switch s {
	case "mine":
		return BuildingMine, true
	case "processing_plant", "plant":
		return BuildingProcessingPlant, true
	case "tram_station", "tram":
		return BuildingTramStation, true
	default:
		return BuildingMine, false
	}
}

// Building occupies one tile plus a 2x2 footprint of walls.
// Only mines yield resources.
type Building struct {
	kind       BuildingKind
	lastPickup time.Time
	cooldown   time.Duration
}

// NewMine creates a mine whose cooldown starts at now.
// A non-positive cooldown falls back to DefaultMineCooldown.
func NewMine(now time.Time, cooldown time.Duration) *Building {
	if cooldown <= 0 {
		cooldown = DefaultMineCooldown
	}
	return &Building{
		kind:       BuildingMine,
		lastPickup: now,
		cooldown:   cooldown,
	}
}

// NewProcessingPlant creates a processing plant.
func NewProcessingPlant() *Building {
	return &Building{kind: BuildingProcessingPlant}
}

// NewTramStation creates a tram station.
func NewTramStation() *Building {
	return &Building{kind: BuildingTramStation}
}

// NewBuilding creates a building of the given kind.
func NewBuilding(kind BuildingKind, now time.Time, mineCooldown time.Duration) *Building {
	switch kind {
	case BuildingProcessingPlant:
		return NewProcessingPlant()
	case BuildingTramStation:
		return NewTramStation()
	default:
		return NewMine(now, mineCooldown)
	}
}

func (*Building) isOccupant() {}

// Kind returns the building variant.
func (b *Building) Kind() BuildingKind {
	return b.kind
}

// LastPickup returns the time of the last successful pickup (mines only).
func (b *Building) LastPickup() time.Time {
	return b.lastPickup
}

// TryPickUp attempts to collect one resource at time now.
// For a mine it succeeds only if strictly more than the cooldown has passed
// since the last success; a failed attempt changes nothing.
func (b *Building) TryPickUp(now time.Time) bool {
	switch b.kind {
	case BuildingMine:
		if now.Sub(b.lastPickup) > b.cooldown {
			b.lastPickup = now
			return true
		}
		return false
	default:
		return false
	}
}

// Clone returns a copy of the building.
func (b *Building) Clone() *Building {
	clone := *b
	return &clone
}
