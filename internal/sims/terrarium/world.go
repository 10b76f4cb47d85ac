package terrarium

import (
	"math"
	"math/rand"
	"time"

	"github.com/meltingscales/pillbugplants/internal/core"
)

// PerformanceMetrics records how long each pipeline stage took during the
// most recent tick, plus a rolling ticks-per-second estimate.
type PerformanceMetrics struct {
	TotalUpdate       time.Duration
	Physics           time.Duration
	Gravity           time.Duration
	Projectiles       time.Duration
	Wind              time.Duration
	PlantSupport      time.Duration
	NutrientDiffusion time.Duration
	LifeUpdate        time.Duration
	SpawnEntities     time.Duration
	TicksPerSecond    float64

	frameTimes []time.Duration
}

// gridT is the tile grid specialization used throughout the pipeline.
type gridT = core.Grid[Tile]

// tileChange is one discrete cell mutation accumulated by sparse stages and
// applied atomically at stage end.
type tileChange struct {
	x, y int
	tile Tile
}

// World stores all state for the terrarium simulation.
type World struct {
	cfg Config

	w, h int

	tiles  *core.Grid[Tile]
	biomes *core.Grid[Biome]

	display []uint8

	tick          int
	dayCycle      float64
	seasonCycle   float64
	temperature   float64
	humidity      float64
	windDirection float64
	windStrength  float64
	rainIntensity float64

	projectiles []SeedProjectile
	changes     []tileChange

	perf PerformanceMetrics

	rng *rand.Rand
}

// New returns a terrarium simulation with the provided dimensions using
// defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a terrarium world configured from the provided
// options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		tiles:       core.NewGrid[Tile](cfg.Width, cfg.Height),
		biomes:      core.NewGrid[Biome](cfg.Width, cfg.Height),
		display:     make([]uint8, max(cfg.Width, 1)*max(cfg.Height, 1)),
		projectiles: nil,
		changes:     make([]tileChange, 0, 1024),
		rng:         rand.New(rand.NewSource(cfg.Seed)),
	}
	w.w = w.tiles.W
	w.h = w.tiles.H
	w.perf.frameTimes = make([]time.Duration, 0, 60)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "terrarium" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Tiles exposes the active tile grid.
func (w *World) Tiles() *core.Grid[Tile] { return w.tiles }

// TileAt returns the tile at (x, y), or an empty tile when out of bounds.
func (w *World) TileAt(x, y int) Tile {
	if !w.tiles.InBounds(x, y) {
		return Tile{}
	}
	return w.tiles.At(x, y)
}

// BiomeAt returns the biome at (x, y); out-of-range coordinates report
// grassland.
func (w *World) BiomeAt(x, y int) Biome {
	if !w.biomes.InBounds(x, y) {
		return BiomeGrassland
	}
	return w.biomes.At(x, y)
}

// Tick returns the number of completed update calls since the last Reset.
func (w *World) Tick() int { return w.tick }

// IsDay reports whether the day cycle is in its daylight half.
func (w *World) IsDay() bool { return math.Sin(w.dayCycle) > 0 }

// RainIntensity returns the current rainfall level in [0, 1].
func (w *World) RainIntensity() float64 { return w.rainIntensity }

// Temperature returns the eased temperature in [-1, 1].
func (w *World) Temperature() float64 { return w.temperature }

// Humidity returns the eased humidity in [0, 1].
func (w *World) Humidity() float64 { return w.humidity }

// Wind returns the wind direction in radians and its strength in [0, 1].
func (w *World) Wind() (direction, strength float64) {
	return w.windDirection, w.windStrength
}

// ProjectileCount reports how many seeds are currently in ballistic flight.
func (w *World) ProjectileCount() int { return len(w.projectiles) }

// Performance returns stage timings for the most recent tick.
func (w *World) Performance() PerformanceMetrics { return w.perf }

// Reset prepares the initial world using deterministic randomness.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)

	w.tick = 0
	w.dayCycle = 0
	w.seasonCycle = 0
	w.temperature = 0.3
	w.humidity = 0.5
	w.windDirection = 0
	w.windStrength = 0.3
	w.rainIntensity = 0
	w.projectiles = w.projectiles[:0]
	w.changes = w.changes[:0]

	w.tiles.Clear()
	w.generateBiomeMap()
	w.generateTerrain()
	w.seedInitialLife()
	w.rebuildDisplay()
}

// Step advances the simulation one tick through the full pipeline. Stage
// order is load-bearing: each stage reads the grid produced by the previous
// one within the same tick.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	start := time.Now()
	w.tick++

	w.advanceEnvironment()
	w.spawnRain()

	t := time.Now()
	w.updateTerrain()
	w.perf.Physics = time.Since(t)

	t = time.Now()
	w.applyStructuralGravity()
	w.perf.Gravity = time.Since(t)

	t = time.Now()
	w.updateProjectiles()
	w.perf.Projectiles = time.Since(t)

	t = time.Now()
	w.applyWindDispersal()
	w.perf.Wind = time.Since(t)

	t = time.Now()
	w.checkPlantSupport()
	w.perf.PlantSupport = time.Since(t)

	t = time.Now()
	w.diffuseNutrients()
	w.perf.NutrientDiffusion = time.Since(t)

	t = time.Now()
	w.updateLife()
	w.perf.LifeUpdate = time.Since(t)

	t = time.Now()
	w.spawnEntities()
	w.perf.SpawnEntities = time.Since(t)

	w.rebuildDisplay()
	w.perf.TotalUpdate = time.Since(start)
	w.recordFrame(w.perf.TotalUpdate)
}

func (w *World) recordFrame(d time.Duration) {
	if len(w.perf.frameTimes) >= 60 {
		copy(w.perf.frameTimes, w.perf.frameTimes[1:])
		w.perf.frameTimes = w.perf.frameTimes[:59]
	}
	w.perf.frameTimes = append(w.perf.frameTimes, d)
	var sum time.Duration
	for _, f := range w.perf.frameTimes {
		sum += f
	}
	if sum > 0 {
		w.perf.TicksPerSecond = float64(len(w.perf.frameTimes)) / sum.Seconds()
	}
}

// chance draws a probabilistic branch, clamping the probability into [0, 1]
// before consulting the RNG.
func (w *World) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return w.rng.Float64() < p
}

// applyChanges commits the accumulated change list and truncates it.
func (w *World) applyChanges() {
	for _, c := range w.changes {
		if w.tiles.InBounds(c.x, c.y) {
			w.tiles.Set(c.x, c.y, c.tile)
		}
	}
	w.changes = w.changes[:0]
}

func (w *World) queueChange(x, y int, t Tile) {
	w.changes = append(w.changes, tileChange{x: x, y: y, tile: t})
}

// generateTerrain fills the bottom rows with biome-flavored ground, carves a
// few wetland pools, and sprinkles nutrients.
func (w *World) generateTerrain() {
	groundRows := w.cfg.Params.GroundRows
	if groundRows > w.h {
		groundRows = w.h
	}
	for y := w.h - groundRows; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			biome := w.biomes.At(x, y)
			dirtRatio, _ := biome.TerrainPreferences()
			if w.chance(0.1) {
				continue // leave a gap
			}
			if w.rng.Float64() < dirtRatio {
				w.tiles.Set(x, y, Tile{Kind: KindDirt})
			} else {
				w.tiles.Set(x, y, Tile{Kind: KindSand})
			}
		}
	}

	// Wetland pools just above the ground line.
	surface := w.h - groundRows - 1
	if surface >= 0 {
		for x := 0; x < w.w; x++ {
			if w.biomes.At(x, surface) == BiomeWetland && w.chance(0.12) {
				w.tiles.Set(x, surface, Water(uint8(100+w.rng.Intn(81))))
			}
		}
	}

	// Nutrient sprinkle, scaled by biome richness.
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if w.tiles.At(x, y).Kind != KindEmpty {
				continue
			}
			if w.chance(0.008 * w.biomes.At(x, y).NutrientModifier()) {
				w.tiles.Set(x, y, Tile{Kind: KindNutrient})
			}
		}
	}
}

// seedInitialLife places the starting plants and pillbugs near the surface.
func (w *World) seedInitialLife() {
	groundRows := w.cfg.Params.GroundRows
	low := w.h - groundRows - 1
	high := w.h - 3
	if low < 0 {
		low = 0
	}
	if high <= low {
		high = low + 1
	}

	for i := 0; i < w.cfg.Params.InitialPlants; i++ {
		x := w.rng.Intn(w.w)
		y := low + w.rng.Intn(high-low)
		if w.tiles.InBounds(x, y) && w.tiles.At(x, y).Kind == KindEmpty {
			w.tiles.Set(x, y, Organism(KindPlantStem, 10, randomSize(w.rng)))
		}
	}

	for i := 0; i < w.cfg.Params.InitialPillbugs; i++ {
		x := w.rng.Intn(max(w.w-2, 1))
		y := low + w.rng.Intn(high-low)
		if !w.tiles.InBounds(x+2, y) {
			continue
		}
		if w.tiles.At(x, y).Kind != KindEmpty ||
			w.tiles.At(x+1, y).Kind != KindEmpty ||
			w.tiles.At(x+2, y).Kind != KindEmpty {
			continue
		}
		size := randomSize(w.rng)
		w.tiles.Set(x, y, Organism(KindPillbugLegs, 20, size))
		w.tiles.Set(x+1, y, Organism(KindPillbugBody, 20, size))
		w.tiles.Set(x+2, y, Organism(KindPillbugHead, 20, size))
	}
}

// spawnEntities keeps the ecosystem above its population floors by dropping
// fresh organisms into the upper band of the world.
func (w *World) spawnEntities() {
	plants := 0
	pillbugs := 0
	for _, t := range w.tiles.Cells() {
		switch t.Kind {
		case KindPlantStem:
			plants++
		case KindPillbugHead:
			pillbugs++
		}
	}

	band := min(5, w.h)
	if plants < w.cfg.Params.PlantFloor {
		for i := 0; i < w.cfg.Params.PlantFloor+1-plants; i++ {
			x := w.rng.Intn(w.w)
			y := w.rng.Intn(band)
			if w.tiles.At(x, y).Kind == KindEmpty {
				w.tiles.Set(x, y, Organism(KindPlantStem, 5, randomSize(w.rng)))
			}
		}
	}
	if pillbugs < w.cfg.Params.PillbugFloor {
		for i := 0; i < w.cfg.Params.PillbugFloor+1-pillbugs; i++ {
			x := w.rng.Intn(w.w)
			y := w.rng.Intn(band)
			if w.tiles.At(x, y).Kind == KindEmpty {
				w.tiles.Set(x, y, Organism(KindPillbugHead, 10, randomSize(w.rng)))
			}
		}
	}
}

func init() {
	core.Register("terrarium", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
