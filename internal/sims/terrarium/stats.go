package terrarium

// EcosystemStats is a snapshot of the population counters used by the
// overlays and the sweep harness.
type EcosystemStats struct {
	TotalPlants      int
	TotalPillbugs    int
	WaterCoverage    int
	NutrientCount    int
	PlantHealthRatio float64
	BiomeDiversity   int
}

// Stats tallies the grid in one pass. PlantHealthRatio is the share of
// plant tissue that is neither withered nor diseased; a plantless world
// reports 1.
func (w *World) Stats() EcosystemStats {
	var s EcosystemStats
	healthy := 0
	for _, t := range w.tiles.Cells() {
		switch {
		case t.IsPlant():
			s.TotalPlants++
			if t.Kind != KindPlantWithered && t.Kind != KindPlantDiseased {
				healthy++
			}
		case t.IsPillbug():
			s.TotalPillbugs++
		case t.IsWater():
			s.WaterCoverage++
		case t.Kind == KindNutrient:
			s.NutrientCount++
		}
	}
	if s.TotalPlants > 0 {
		s.PlantHealthRatio = float64(healthy) / float64(s.TotalPlants)
	} else {
		s.PlantHealthRatio = 1
	}

	var seen [biomeCount]bool
	for _, b := range w.biomes.Cells() {
		seen[b] = true
	}
	for _, ok := range seen {
		if ok {
			s.BiomeDiversity++
		}
	}
	return s
}
