package terrarium

import "math/rand"

// Biome is a static regional classifier assigned once at world generation.
// It modulates moisture, growth, nutrients, terrain composition, and rain
// accumulation and never changes afterwards.
type Biome uint8

const (
	BiomeWetland Biome = iota
	BiomeGrassland
	BiomeDrylands
	BiomeWoodland

	biomeCount
)

func (b Biome) String() string {
	switch b {
	case BiomeWetland:
		return "wetland"
	case BiomeGrassland:
		return "grassland"
	case BiomeDrylands:
		return "drylands"
	default:
		return "woodland"
	}
}

// MoistureRetention affects water pooling and evaporation.
func (b Biome) MoistureRetention() float64 {
	switch b {
	case BiomeWetland:
		return 1.4
	case BiomeDrylands:
		return 0.6
	case BiomeWoodland:
		return 1.2
	default:
		return 1.0
	}
}

// PlantGrowthModifier scales how well plants grow in the biome.
func (b Biome) PlantGrowthModifier() float64 {
	switch b {
	case BiomeWetland:
		return 1.3
	case BiomeDrylands:
		return 0.7
	case BiomeWoodland:
		return 1.5
	default:
		return 1.0
	}
}

// NutrientModifier scales nutrient spawning and availability.
func (b Biome) NutrientModifier() float64 {
	switch b {
	case BiomeWetland:
		return 1.1
	case BiomeDrylands:
		return 0.8
	case BiomeWoodland:
		return 1.4
	default:
		return 1.0
	}
}

// TerrainPreferences returns the (dirt, sand) composition ratio for ground
// generation in the biome.
func (b Biome) TerrainPreferences() (dirt, sand float64) {
	switch b {
	case BiomeWetland:
		return 0.8, 0.2
	case BiomeDrylands:
		return 0.4, 0.6
	case BiomeWoodland:
		return 0.9, 0.1
	default:
		return 0.7, 0.3
	}
}

// RainAccumulationBonus scales how much rain stays in the biome.
func (b Biome) RainAccumulationBonus() float64 {
	switch b {
	case BiomeWetland:
		return 1.5
	case BiomeDrylands:
		return 0.7
	case BiomeWoodland:
		return 1.2
	default:
		return 1.0
	}
}

func randomBiome(rng *rand.Rand) Biome {
	return Biome(rng.Intn(int(biomeCount)))
}

// randomSize draws an organism size class: 30% small, 40% medium, 30% large.
func randomSize(rng *rand.Rand) SizeClass {
	switch r := rng.Intn(10); {
	case r <= 2:
		return SizeSmall
	case r <= 6:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// generateBiomeMap tiles the grid into rectangular regions, assigns each a
// random biome, and samples with a small coordinate jitter so region edges
// come out fuzzy instead of ruler-straight.
func (w *World) generateBiomeMap() {
	regionW := w.w / 4
	if regionW < 4 {
		regionW = 4
	}
	regionH := w.h / 2
	if regionH < 4 {
		regionH = 4
	}

	cols := (w.w + regionW - 1) / regionW
	rows := (w.h + regionH - 1) / regionH
	regions := make([]Biome, cols*rows)
	for i := range regions {
		regions[i] = randomBiome(w.rng)
	}

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			jx := x + w.rng.Intn(5) - 2
			jy := y + w.rng.Intn(5) - 2
			if jx < 0 {
				jx = 0
			} else if jx >= w.w {
				jx = w.w - 1
			}
			if jy < 0 {
				jy = 0
			} else if jy >= w.h {
				jy = w.h - 1
			}
			cx := jx / regionW
			cy := jy / regionH
			w.biomes.Set(x, y, regions[cy*cols+cx])
		}
	}
}
