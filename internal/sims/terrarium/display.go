package terrarium

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// sizeGlyph swaps the medium-size glyph for a small/large variant where one
// exists.
func sizeGlyph(s SizeClass, base rune) rune {
	type key struct {
		s SizeClass
		r rune
	}
	if r, ok := map[key]rune{
		{SizeSmall, '|'}: 'i',
		{SizeSmall, 'L'}: 'l',
		{SizeSmall, 'o'}: '°',
		{SizeSmall, '/'}: '\\',
		{SizeSmall, '*'}: '·',
		{SizeSmall, '@'}: 'ó',
		{SizeSmall, 'O'}: 'o',
		{SizeSmall, 'w'}: 'v',
		{SizeSmall, 'r'}: '·',
		{SizeSmall, '?'}: '¿',
		{SizeLarge, '|'}: '║',
		{SizeLarge, 'L'}: 'Ł',
		{SizeLarge, 'o'}: 'O',
		{SizeLarge, '/'}: '╱',
		{SizeLarge, '*'}: '✱',
		{SizeLarge, '@'}: '●',
		{SizeLarge, 'O'}: '●',
		{SizeLarge, 'w'}: 'W',
		{SizeLarge, 'r'}: 'R',
		{SizeLarge, '?'}: '‽',
	}[key{s, base}]; ok {
		return r
	}
	return base
}

// Glyph returns the one-character rendering of the tile.
func (t Tile) Glyph() rune {
	switch t.Kind {
	case KindEmpty:
		return ' '
	case KindDirt:
		return '#'
	case KindSand:
		return '.'
	case KindNutrientDirt:
		return '='
	case KindWater:
		switch {
		case t.Amount <= 50:
			return '·'
		case t.Amount <= 120:
			return '~'
		case t.Amount <= 200:
			return '≈'
		default:
			return '█'
		}
	case KindPlantStem:
		return sizeGlyph(t.Size, '|')
	case KindPlantLeaf:
		return sizeGlyph(t.Size, 'L')
	case KindPlantBud:
		return sizeGlyph(t.Size, 'o')
	case KindPlantBranch:
		return sizeGlyph(t.Size, '/')
	case KindPlantFlower:
		return sizeGlyph(t.Size, '*')
	case KindPlantWithered:
		return 'x'
	case KindPlantDiseased:
		return sizeGlyph(t.Size, '?')
	case KindPlantRoot:
		return sizeGlyph(t.Size, 'r')
	case KindPillbugHead:
		return sizeGlyph(t.Size, '@')
	case KindPillbugBody:
		return sizeGlyph(t.Size, 'O')
	case KindPillbugLegs:
		return sizeGlyph(t.Size, 'w')
	case KindPillbugDecaying:
		return '░'
	case KindNutrient:
		return '+'
	case KindSeed:
		return sizeGlyph(t.Size, 'o')
	case KindSpore:
		return '∘'
	}
	return '?'
}

func sizeBoost(s SizeClass) float64 {
	switch s {
	case SizeSmall:
		return 0.85
	case SizeLarge:
		return 1.15
	default:
		return 1.0
	}
}

func fade(base uint16, age uint8, floor uint8) uint8 {
	v := base
	if uint16(age) >= v {
		v = 0
	} else {
		v -= uint16(age)
	}
	if v < uint16(floor) {
		v = uint16(floor)
	}
	return uint8(v)
}

func boosted(v uint8, s SizeClass) uint8 {
	return uint8(math.Min(float64(v)*sizeBoost(s), 255))
}

// Color returns the display color for the tile; organism colors fade with
// age and brighten slightly for larger classes.
func (t Tile) Color() color.RGBA {
	switch t.Kind {
	case KindDirt:
		return color.RGBA{R: 101, G: 67, B: 33, A: 255}
	case KindSand:
		return color.RGBA{R: 210, G: 190, B: 90, A: 255}
	case KindNutrientDirt:
		return color.RGBA{R: 120, G: 80, B: 60, A: 255}
	case KindWater:
		switch {
		case t.Amount <= 50:
			return color.RGBA{R: 180, G: 220, B: 255, A: 255}
		case t.Amount <= 120:
			return color.RGBA{R: 64, G: 164, B: 255, A: 255}
		case t.Amount <= 200:
			return color.RGBA{R: 0, G: 100, B: 200, A: 255}
		default:
			return color.RGBA{R: 0, G: 50, B: 150, A: 255}
		}
	case KindPlantStem:
		i := boosted(fade(255, t.Age, 80), t.Size)
		return color.RGBA{R: i / 3, G: i, B: i / 4, A: 255}
	case KindPlantLeaf:
		i := boosted(fade(150, t.Age, 60), t.Size)
		return color.RGBA{G: i, A: 255}
	case KindPlantBud:
		i := boosted(fade(170, t.Age, 120), t.Size)
		return color.RGBA{R: i, G: i / 2, A: 255}
	case KindPlantBranch:
		i := boosted(fade(120, t.Age, 70), t.Size)
		return color.RGBA{R: i / 4, G: i, B: i / 3, A: 255}
	case KindPlantFlower:
		r := boosted(fade(255, t.Age, 100), t.Size)
		g := boosted(fade(200, t.Age/2, 50), t.Size)
		return color.RGBA{R: r, G: g, B: r, A: 255}
	case KindPlantWithered:
		progress := float64(t.Age) / float64(witheredMaxAge)
		i := boosted(uint8(100*(1-progress*0.6)), t.Size)
		return color.RGBA{R: i, G: i / 2, A: 255}
	case KindPlantDiseased:
		progress := float64(t.Age) / 60
		r := boosted(uint8(100+progress*155), t.Size)
		g := boosted(uint8(80*(1-progress*0.8)), t.Size)
		return color.RGBA{R: r, G: g, A: 255}
	case KindPlantRoot:
		i := boosted(fade(200, t.Age, 80), t.Size)
		return color.RGBA{R: i / 2, G: i / 3, B: i / 4, A: 255}
	case KindPillbugHead:
		i := boosted(fade(180, t.Age, 60), t.Size)
		return color.RGBA{R: satAdd(i, 20), G: i, B: satSub(i, 10), A: 255}
	case KindPillbugBody:
		i := boosted(fade(180, t.Age, 50), t.Size)
		return color.RGBA{R: i, G: i, B: i, A: 255}
	case KindPillbugLegs:
		i := boosted(fade(180, t.Age, 40), t.Size)
		return color.RGBA{R: satSub(i, 20), G: satSub(i, 10), B: i, A: 255}
	case KindPillbugDecaying:
		progress := float64(t.Age) / float64(decayingMaxAge)
		i := boosted(uint8(80*(1-progress*0.7)), t.Size)
		return color.RGBA{R: i, G: i / 3, B: i / 2, A: 255}
	case KindNutrient:
		return color.RGBA{R: 200, G: 60, B: 200, A: 255}
	case KindSeed:
		v := float64(fade(100, t.Age, 50)) * sizeBoost(t.Size)
		return color.RGBA{R: uint8(v * 0.6), G: uint8(v * 0.4), B: uint8(v * 0.2), A: 255}
	case KindSpore:
		v := fade(50, t.Age, 20)
		return color.RGBA{R: v, G: v / 2, B: v / 3, A: 255}
	}
	return color.RGBA{A: 255}
}

// The display buffer stores one palette index per cell: the kind for most
// tiles, with water expanded into four depth tiers.
const waterTierBase = uint8(kindCount)

func displayIndex(t Tile) uint8 {
	if t.Kind != KindWater {
		return uint8(t.Kind)
	}
	switch {
	case t.Amount <= 50:
		return waterTierBase
	case t.Amount <= 120:
		return waterTierBase + 1
	case t.Amount <= 200:
		return waterTierBase + 2
	default:
		return waterTierBase + 3
	}
}

var terrariumPalette = buildPalette()

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA { return terrariumPalette }

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, int(kindCount)+4)
	for k := Kind(0); k < kindCount; k++ {
		palette[k] = Tile{Kind: k}.Color()
	}
	for tier, depth := range [4]uint8{30, 100, 180, 255} {
		palette[int(waterTierBase)+tier] = Water(depth).Color()
	}
	return palette
}

func (w *World) rebuildDisplay() {
	for i, t := range w.tiles.Cells() {
		w.display[i] = displayIndex(t)
	}
}

// String renders the grid one character per tile followed by a summary
// block of the environment scalars and ecosystem stats.
func (w *World) String() string {
	var b strings.Builder
	b.Grow((w.w + 1) * (w.h + 8))
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			b.WriteRune(w.tiles.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}

	phase := "Night"
	if w.IsDay() {
		phase = "Day"
	}
	stats := w.Stats()
	fmt.Fprintf(&b, "Tick: %d\n", w.tick)
	fmt.Fprintf(&b, "Day/Night: %s\n", phase)
	fmt.Fprintf(&b, "Season: %s\n", w.CurrentSeason())
	fmt.Fprintf(&b, "Temperature: %.2f  Humidity: %.2f\n", w.temperature, w.humidity)
	fmt.Fprintf(&b, "Rain intensity: %.2f\n", w.rainIntensity)
	fmt.Fprintf(&b, "Wind: %.0f° @ %.2f\n", w.windDirection*180/math.Pi, w.windStrength)
	fmt.Fprintf(&b, "Plants: %d  Pillbugs: %d  Water: %d  Nutrients: %d  Health: %.2f  Biomes: %d\n",
		stats.TotalPlants, stats.TotalPillbugs, stats.WaterCoverage,
		stats.NutrientCount, stats.PlantHealthRatio, stats.BiomeDiversity)
	return b.String()
}
