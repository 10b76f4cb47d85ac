package terrarium

import (
	"strconv"

	"github.com/meltingscales/pillbugplants/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("year_ticks", "Year length (ticks)", params.YearTicks),
				intParam("ground_rows", "Ground rows", params.GroundRows),
			},
		},
		{
			Name: "Weather",
			Params: []core.Parameter{
				floatParam("rain_base_chance", "Rain base chance", params.RainBaseChance),
				floatParam("rain_spawn_scale", "Rain spawn scale", params.RainSpawnScale),
				floatParam("wind_min_strength", "Wind min strength", params.WindMinStrength),
				floatParam("wind_dispersal_base", "Wind dispersal base", params.WindDispersalBase),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				floatParam("absorption_chance", "Soil absorption chance", params.AbsorptionChance),
				floatParam("evaporation_scale", "Evaporation scale", params.EvaporationScale),
				floatParam("flow_resistance", "Lateral flow resistance", params.FlowResistance),
			},
		},
		{
			Name: "Soil",
			Params: []core.Parameter{
				floatParam("nutrient_diffusion_chance", "Nutrient diffusion chance", params.NutrientDiffusionChance),
				floatParam("soil_enrich_chance", "Soil enrich chance", params.SoilEnrichChance),
			},
		},
		{
			Name: "Life",
			Params: []core.Parameter{
				floatParam("growth_scale", "Growth scale", params.GrowthScale),
				floatParam("flower_seed_chance", "Flower seed chance", params.FlowerSeedChance),
				floatParam("unsupported_wither_chance", "Unsupported wither chance", params.UnsupportedWitherChance),
				intParam("initial_plants", "Initial plants", params.InitialPlants),
				intParam("initial_pillbugs", "Initial pillbugs", params.InitialPillbugs),
				intParam("plant_floor", "Plant population floor", params.PlantFloor),
				intParam("pillbug_floor", "Pillbug population floor", params.PillbugFloor),
			},
		},
		{
			Name: "Ballistics",
			Params: []core.Parameter{
				floatParam("projectile_gravity", "Projectile gravity", params.ProjectileGravity),
				floatParam("projectile_wind_accel", "Projectile wind acceleration", params.ProjectileWindAccel),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the tunables that make sense to nudge while the
// simulation is running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "growth_scale", Label: "Growth scale", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 5, HasMax: true},
		{Key: "rain_base_chance", Label: "Rain base chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "evaporation_scale", Label: "Evaporation scale", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 5, HasMax: true},
		{Key: "wind_dispersal_base", Label: "Wind dispersal base", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "flower_seed_chance", Label: "Flower seed chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "plant_floor", Label: "Plant floor", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 50, HasMax: true},
		{Key: "pillbug_floor", Label: "Pillbug floor", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 50, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable in place; it reports whether the
// key was recognized.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	p := &w.cfg.Params
	switch key {
	case "year_ticks":
		if value < 4 {
			value = 4
		}
		p.YearTicks = value
	case "ground_rows":
		p.GroundRows = value
	case "initial_plants":
		p.InitialPlants = value
	case "initial_pillbugs":
		p.InitialPillbugs = value
	case "plant_floor":
		p.PlantFloor = value
	case "pillbug_floor":
		p.PillbugFloor = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable in place; it reports whether the
// key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		return false
	}
	p := &w.cfg.Params
	switch key {
	case "rain_base_chance":
		p.RainBaseChance = value
	case "rain_spawn_scale":
		p.RainSpawnScale = value
	case "absorption_chance":
		p.AbsorptionChance = value
	case "evaporation_scale":
		p.EvaporationScale = value
	case "flow_resistance":
		p.FlowResistance = value
	case "wind_min_strength":
		p.WindMinStrength = value
	case "wind_dispersal_base":
		p.WindDispersalBase = value
	case "nutrient_diffusion_chance":
		p.NutrientDiffusionChance = value
	case "soil_enrich_chance":
		p.SoilEnrichChance = value
	case "growth_scale":
		p.GrowthScale = value
	case "flower_seed_chance":
		p.FlowerSeedChance = value
	case "unsupported_wither_chance":
		p.UnsupportedWitherChance = value
	case "projectile_gravity":
		p.ProjectileGravity = value
	case "projectile_wind_accel":
		p.ProjectileWindAccel = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
