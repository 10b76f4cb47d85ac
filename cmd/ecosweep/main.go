package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/meltingscales/pillbugplants/internal/sims/terrarium"
)

// paramSet is one point in the tuning grid explored by the sweep.
type paramSet struct {
	seed        int64
	growthScale float64
	rainChance  float64
	witherRisk  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("seed=%d growth=%.2f rain=%.3f wither=%.2f",
		p.seed, p.growthScale, p.rainChance, p.witherRisk)
}

// scenarioResult captures the ecosystem telemetry after a fixed-length run.
type scenarioResult struct {
	params paramSet

	finalPlants   int
	finalPillbugs int
	peakPlants    int
	waterCoverage int
	healthRatio   float64
	biomes        int
}

// score favors runs that end with a living, healthy, diverse ecosystem.
func (r scenarioResult) score() float64 {
	return float64(r.finalPlants)*r.healthRatio + 2*float64(r.finalPillbugs)
}

func main() {
	steps := flag.Int("steps", 2000, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 3, "seeds to try per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 120, "grid width in tiles")
	height := flag.Int("h", 48, "grid height in tiles")
	flag.Parse()

	baseCfg := terrarium.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height

	growthOptions := []float64{0.8, 1.0, 1.3}
	rainOptions := []float64{0.03, 0.05, 0.08}
	witherOptions := []float64{0.2, 0.3, 0.5}

	var sets []paramSet
	for _, growth := range growthOptions {
		for _, rain := range rainOptions {
			for _, wither := range witherOptions {
				for s := 0; s < *seeds; s++ {
					sets = append(sets, paramSet{
						seed:        int64(1000 + s),
						growthScale: growth,
						rainChance:  rain,
						witherRisk:  wither,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps each)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].score() > all[j].score() })

	fmt.Printf("Completed in %s\n\n", time.Since(start).Round(time.Millisecond))
	limit := 15
	if len(all) < limit {
		limit = len(all)
	}
	fmt.Println("Top scenarios:")
	for _, res := range all[:limit] {
		fmt.Printf("  %-45s plants=%-4d (peak %-4d) bugs=%-3d water=%-5d health=%.2f biomes=%d score=%.1f\n",
			res.params, res.finalPlants, res.peakPlants, res.finalPillbugs,
			res.waterCoverage, res.healthRatio, res.biomes, res.score())
	}
}

// runScenario advances a fresh world for the requested number of ticks and
// summarizes its final ecosystem state.
func runScenario(base terrarium.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Seed = params.seed
	cfg.Params.GrowthScale = params.growthScale
	cfg.Params.RainBaseChance = params.rainChance
	cfg.Params.UnsupportedWitherChance = params.witherRisk

	world := terrarium.NewWithConfig(cfg)
	world.Reset(0)

	res := scenarioResult{params: params}
	for i := 0; i < steps; i++ {
		world.Step()
		if stats := world.Stats(); stats.TotalPlants > res.peakPlants {
			res.peakPlants = stats.TotalPlants
		}
	}

	stats := world.Stats()
	res.finalPlants = stats.TotalPlants
	res.finalPillbugs = stats.TotalPillbugs
	res.waterCoverage = stats.WaterCoverage
	res.healthRatio = stats.PlantHealthRatio
	res.biomes = stats.BiomeDiversity
	return res
}
