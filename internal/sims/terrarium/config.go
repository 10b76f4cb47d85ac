package terrarium

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds tunable thresholds and probabilities for the terrarium sim.
type Params struct {
	YearTicks int `yaml:"year_ticks"`

	RainBaseChance float64 `yaml:"rain_base_chance"`
	RainSpawnScale float64 `yaml:"rain_spawn_scale"`

	AbsorptionChance float64 `yaml:"absorption_chance"`
	EvaporationScale float64 `yaml:"evaporation_scale"`
	FlowResistance   float64 `yaml:"flow_resistance"`

	WindMinStrength   float64 `yaml:"wind_min_strength"`
	WindDispersalBase float64 `yaml:"wind_dispersal_base"`

	NutrientDiffusionChance float64 `yaml:"nutrient_diffusion_chance"`
	SoilEnrichChance        float64 `yaml:"soil_enrich_chance"`

	GrowthScale             float64 `yaml:"growth_scale"`
	FlowerSeedChance        float64 `yaml:"flower_seed_chance"`
	UnsupportedWitherChance float64 `yaml:"unsupported_wither_chance"`

	ProjectileGravity   float64 `yaml:"projectile_gravity"`
	ProjectileWindAccel float64 `yaml:"projectile_wind_accel"`

	GroundRows      int `yaml:"ground_rows"`
	InitialPlants   int `yaml:"initial_plants"`
	InitialPillbugs int `yaml:"initial_pillbugs"`
	PlantFloor      int `yaml:"plant_floor"`
	PillbugFloor    int `yaml:"pillbug_floor"`
}

// Config controls the terrarium simulation dimensions and tunables.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  120,
		Height: 48,
		Seed:   1337,
		Params: Params{
			YearTicks:               2400,
			RainBaseChance:          0.05,
			RainSpawnScale:          0.1,
			AbsorptionChance:        0.15,
			EvaporationScale:        1.0,
			FlowResistance:          1.0,
			WindMinStrength:         0.15,
			WindDispersalBase:       0.5,
			NutrientDiffusionChance: 0.1,
			SoilEnrichChance:        0.3,
			GrowthScale:             1.0,
			FlowerSeedChance:        0.04,
			UnsupportedWitherChance: 0.3,
			ProjectileGravity:       0.2,
			ProjectileWindAccel:     0.3,
			GroundRows:              8,
			InitialPlants:           3,
			InitialPillbugs:         2,
			PlantFloor:              2,
			PillbugFloor:            1,
		},
	}
}

// LoadConfig reads a YAML configuration file, layered over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("terrarium config: %w", err)
	}
	if c.Width <= 0 {
		c.Width = DefaultConfig().Width
	}
	if c.Height <= 0 {
		c.Height = DefaultConfig().Height
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	intKeys := map[string]*int{
		"year_ticks":       &c.Params.YearTicks,
		"ground_rows":      &c.Params.GroundRows,
		"initial_plants":   &c.Params.InitialPlants,
		"initial_pillbugs": &c.Params.InitialPillbugs,
		"plant_floor":      &c.Params.PlantFloor,
		"pillbug_floor":    &c.Params.PillbugFloor,
	}
	for key, dst := range intKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	floatKeys := map[string]*float64{
		"rain_base_chance":          &c.Params.RainBaseChance,
		"rain_spawn_scale":          &c.Params.RainSpawnScale,
		"absorption_chance":         &c.Params.AbsorptionChance,
		"evaporation_scale":         &c.Params.EvaporationScale,
		"flow_resistance":           &c.Params.FlowResistance,
		"wind_min_strength":         &c.Params.WindMinStrength,
		"wind_dispersal_base":       &c.Params.WindDispersalBase,
		"nutrient_diffusion_chance": &c.Params.NutrientDiffusionChance,
		"soil_enrich_chance":        &c.Params.SoilEnrichChance,
		"growth_scale":              &c.Params.GrowthScale,
		"flower_seed_chance":        &c.Params.FlowerSeedChance,
		"unsupported_wither_chance": &c.Params.UnsupportedWitherChance,
		"projectile_gravity":        &c.Params.ProjectileGravity,
		"projectile_wind_accel":     &c.Params.ProjectileWindAccel,
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if c.Params.YearTicks < 4 {
		c.Params.YearTicks = 4
	}
	return c
}
