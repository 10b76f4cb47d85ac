package terrarium

import "math"

// Season is derived from the season cycle and sets weather targets plus
// growth-rate multipliers.
type Season uint8

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonFall
	SeasonWinter
)

func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonFall:
		return "fall"
	default:
		return "winter"
	}
}

// weatherTargets returns the (temperature, humidity) pair the environment
// eases toward during the season.
func (s Season) weatherTargets() (temp, humidity float64) {
	switch s {
	case SeasonSpring:
		return 0.3, 0.7
	case SeasonSummer:
		return 0.8, 0.3
	case SeasonFall:
		return 0.1, 0.6
	default:
		return -0.5, 0.4
	}
}

// windTargets returns the (direction, strength) pair the wind eases toward
// during the season.
func (s Season) windTargets() (direction, strength float64) {
	switch s {
	case SeasonSpring:
		return math.Pi / 4, 0.35
	case SeasonSummer:
		return math.Pi / 8, 0.2
	case SeasonFall:
		return 3 * math.Pi / 4, 0.5
	default:
		return math.Pi, 0.6
	}
}

// growthBase is the season's baseline growth-rate multiplier.
func (s Season) growthBase() float64 {
	switch s {
	case SeasonSpring:
		return 1.4
	case SeasonSummer:
		return 1.0
	case SeasonFall:
		return 0.8
	default:
		return 0.4
	}
}

// rainModifier scales the chance of a rain event starting in the season.
func (s Season) rainModifier() float64 {
	switch s {
	case SeasonSpring:
		return 1.5
	case SeasonSummer:
		return 0.7
	case SeasonFall:
		return 1.3
	default:
		return 0.5
	}
}

// CurrentSeason maps the season cycle onto the four discrete seasons.
func (w *World) CurrentSeason() Season {
	idx := int(w.seasonCycle * 4)
	if idx > 3 {
		idx = 3
	}
	return Season(idx)
}

// advanceEnvironment moves the day and season clocks forward and eases
// temperature, humidity, and wind toward season-weighted targets with
// bounded sinusoidal noise. Rain triggering happens here too so every later
// stage sees this tick's weather.
func (w *World) advanceEnvironment() {
	w.dayCycle = math.Mod(float64(w.tick)*0.01, 2*math.Pi)
	w.seasonCycle = math.Mod(float64(w.tick)/float64(w.cfg.Params.YearTicks), 1.0)

	season := w.CurrentSeason()

	targetTemp, targetHumidity := season.weatherTargets()
	w.temperature += (targetTemp - w.temperature) * 0.02
	w.temperature = clampf(w.temperature, -1, 1)
	w.humidity += (targetHumidity - w.humidity) * 0.02
	w.humidity = clampf(w.humidity, 0, 1)

	targetDir, targetStr := season.windTargets()
	w.windDirection += (targetDir - w.windDirection) * 0.01
	w.windDirection += math.Sin(float64(w.tick)*0.013) * 0.02
	w.windDirection = math.Mod(w.windDirection+2*math.Pi, 2*math.Pi)
	w.windStrength += (targetStr - w.windStrength) * 0.01
	w.windStrength += math.Sin(float64(w.tick)*0.007) * 0.01
	w.windStrength = clampf(w.windStrength, 0, 1)

	w.processRainCycle(season)
}

// processRainCycle probabilistically starts rain at night and decays it
// otherwise.
func (w *World) processRainCycle(season Season) {
	night := math.Sin(w.dayCycle) < -0.3
	startChance := w.cfg.Params.RainBaseChance * w.humidity * season.rainModifier()
	if night && w.chance(startChance) {
		span := 0.8*w.humidity - 0.1
		if span < 0 {
			span = 0
		}
		w.rainIntensity = 0.1 + w.rng.Float64()*span
	} else if w.chance(0.02) {
		w.rainIntensity *= 0.95
	}
	if w.rainIntensity < 0.01 {
		w.rainIntensity = 0
	}
}

// seasonalGrowthModifier combines season base rate, a temperature penalty
// curve peaking near 0.3, and a humidity linear term.
func (w *World) seasonalGrowthModifier() float64 {
	tempCurve := 1 - math.Min(1, math.Abs(w.temperature-0.3)*0.9)
	if tempCurve < 0.1 {
		tempCurve = 0.1
	}
	humidityTerm := 0.5 + 0.5*w.humidity
	return w.CurrentSeason().growthBase() * tempCurve * humidityTerm * w.cfg.Params.GrowthScale
}

// spawnRain injects water tiles along the top edge in proportion to the
// rain intensity and the biome's accumulation bonus.
func (w *World) spawnRain() {
	if w.rainIntensity <= 0.1 {
		return
	}
	drops := int(w.rainIntensity * float64(w.w) * w.cfg.Params.RainSpawnScale)
	for i := 0; i < drops; i++ {
		x := w.rng.Intn(w.w)
		if w.tiles.At(x, 0).Kind != KindEmpty {
			continue
		}
		depth := 30 + w.rng.Intn(50)
		depth = int(float64(depth) * w.biomes.At(x, 0).RainAccumulationBonus())
		w.tiles.Set(x, 0, Water(clamp255(float64(depth))))
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
