package terrarium

// Kind enumerates every tile discriminant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindDirt
	KindSand
	KindWater
	KindNutrientDirt
	KindPlantStem
	KindPlantLeaf
	KindPlantBud
	KindPlantBranch
	KindPlantFlower
	KindPlantWithered
	KindPlantDiseased
	KindPlantRoot
	KindPillbugHead
	KindPillbugBody
	KindPillbugLegs
	KindPillbugDecaying
	KindNutrient
	KindSeed
	KindSpore

	kindCount
)

// SizeClass classifies organism tiles into Small/Medium/Large bands. The
// class scales lifespan, growth rate, and wind susceptibility; two adjacent
// organism parts belong to the same organism only when their classes match.
type SizeClass uint8

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// LifespanMultiplier rescales every max-age threshold for the class.
func (s SizeClass) LifespanMultiplier() float64 {
	switch s {
	case SizeSmall:
		return 0.7
	case SizeLarge:
		return 1.4
	default:
		return 1.0
	}
}

// GrowthMultiplier rescales growth and reproduction rates for the class.
func (s SizeClass) GrowthMultiplier() float64 {
	switch s {
	case SizeSmall:
		return 1.3
	case SizeLarge:
		return 0.8
	default:
		return 1.0
	}
}

// WindSusceptibility reports how strongly wind accelerates a particle of
// this class. Small seeds drift the most.
func (s SizeClass) WindSusceptibility() float64 {
	switch s {
	case SizeSmall:
		return 1.0
	case SizeLarge:
		return 0.4
	default:
		return 0.7
	}
}

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// Tile is one grid cell's occupant. Kind is the discriminant; Age carries
// organism/seed/spore age, Size the organism class, and Amount the water
// depth or nutrient-dirt level. Unused payload fields stay zero.
type Tile struct {
	Kind   Kind
	Age    uint8
	Size   SizeClass
	Amount uint8
}

// Constructors for payload-carrying tiles keep call sites terse.

func Water(depth uint8) Tile        { return Tile{Kind: KindWater, Amount: depth} }
func NutrientDirt(level uint8) Tile { return Tile{Kind: KindNutrientDirt, Amount: level} }
func Organism(k Kind, age uint8, size SizeClass) Tile {
	return Tile{Kind: k, Age: age, Size: size}
}
func Seed(age uint8, size SizeClass) Tile { return Tile{Kind: KindSeed, Age: age, Size: size} }
func Spore(age uint8) Tile                { return Tile{Kind: KindSpore, Age: age} }

// IsPlant reports whether the tile is a plant organ.
func (t Tile) IsPlant() bool {
	switch t.Kind {
	case KindPlantStem, KindPlantLeaf, KindPlantBud, KindPlantBranch,
		KindPlantFlower, KindPlantWithered, KindPlantDiseased, KindPlantRoot:
		return true
	}
	return false
}

// IsPillbug reports whether the tile is a pillbug segment.
func (t Tile) IsPillbug() bool {
	switch t.Kind {
	case KindPillbugHead, KindPillbugBody, KindPillbugLegs, KindPillbugDecaying:
		return true
	}
	return false
}

// IsOrganism reports whether the tile carries an organism size class.
func (t Tile) IsOrganism() bool { return t.IsPlant() || t.IsPillbug() }

// IsSoil reports whether the tile is ground that can absorb water and
// anchor plants.
func (t Tile) IsSoil() bool {
	return t.Kind == KindDirt || t.Kind == KindSand || t.Kind == KindNutrientDirt
}

// IsWater reports whether the tile is water.
func (t Tile) IsWater() bool { return t.Kind == KindWater }

// CanWaterFlowInto reports whether water may move into this cell.
func (t Tile) CanWaterFlowInto() bool { return t.Kind == KindEmpty }

// BlocksWater reports whether the tile stops water flow.
func (t Tile) BlocksWater() bool { return t.Kind != KindEmpty && t.Kind != KindWater }

// WindDispersible reports whether wind may pick the tile up at all.
func (t Tile) WindDispersible() bool {
	switch t.Kind {
	case KindSeed, KindSpore, KindNutrient:
		return true
	case KindWater:
		return t.Amount <= shallowWaterDepth
	}
	return false
}

// shallowWaterDepth is the depth at or below which water counts as a light
// particle for wind dispersal and full evaporation.
const shallowWaterDepth = 30

// saturating arithmetic on the uint8 payload fields; counters clamp at the
// type bounds, never wrap.

func satAdd(v, d uint8) uint8 {
	if v > 255-d {
		return 255
	}
	return v + d
}

func satSub(v, d uint8) uint8 {
	if d > v {
		return 0
	}
	return v - d
}

// clamp255 converts a float threshold to the uint8 domain.
func clamp255(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// eatingEfficiency returns the base probability that a pillbug of class bug
// consumes food of class food in one tick. Matched small pairs fare best;
// small bugs attacking large food barely manage.
func eatingEfficiency(bug, food SizeClass) float64 {
	switch {
	case bug == SizeSmall && food == SizeSmall:
		return 0.35
	case bug == SizeMedium && food == SizeMedium:
		return 0.30
	case bug == SizeLarge && food == SizeLarge:
		return 0.25
	case bug == SizeLarge && food == SizeMedium:
		return 0.30
	case bug == SizeLarge && food == SizeSmall:
		return 0.40
	case bug == SizeMedium && food == SizeSmall:
		return 0.35
	case bug == SizeSmall && food == SizeMedium:
		return 0.15
	case bug == SizeSmall && food == SizeLarge:
		return 0.05
	case bug == SizeMedium && food == SizeLarge:
		return 0.20
	}
	return 0.20
}
