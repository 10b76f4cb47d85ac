package terrarium

// Base max-age thresholds before size scaling. Withered, decaying, seed,
// and spore lifetimes are fixed and never size-scaled.
const (
	stemMaxAge   = 100
	leafMaxAge   = 50
	budMaxAge    = 50
	budMatureAge = 15
	branchMaxAge = 100
	flowerMaxAge = 80
	rootMaxAge   = 200
	pillbugMaxAge = 150

	witheredMaxAge = 30
	witheredAgeStep = 2
	decayingMaxAge = 20
	seedMaxAge     = 100
	sporeMaxAge    = 50
)

// Transition rates, gathered here instead of being scattered through the
// state machines.
const (
	nutrientAbsorbChance = 0.1
	nutrientAbsorbReward = 15

	stemGrowthBase = 0.15
	stemGrowUpShare = 0.3
	stemBudShare    = 0.4
	stemRootShare   = 0.6

	leafPhotosynthesisChance = 0.3

	budMatureChance = 0.2
	budBranchShare  = 0.6

	branchExtendShare = 0.25
	branchSproutShare = 0.3

	witheredSporeChance = 0.05
	diseasedSporeChance = 0.08
	diseaseSpreadBase   = 0.15
	sporeInfectChance   = 0.1
	sporeWindThreshold  = 0.4

	rootAbsorbChance  = 0.2
	rootAbsorbReward  = 15
	rootSoilReward    = 10
	rootSoilDrain     = 40
	rootExtendShare   = 0.2

	eatAgeReward     = 10
	grazeAgeReward   = 5
	reproduceChance  = 0.05
	mutationChance   = 0.1

	germinationBase = 0.02
)

// maxAgeFor scales a base threshold by the organism's lifespan multiplier,
// clamped to the uint8 domain.
func maxAgeFor(base float64, s SizeClass) uint8 {
	return clamp255(base * s.LifespanMultiplier())
}

// plantOrganBaseAge returns the unscaled lifespan of a living plant organ.
func plantOrganBaseAge(k Kind) float64 {
	switch k {
	case KindPlantLeaf:
		return leafMaxAge
	case KindPlantBud:
		return budMaxAge
	case KindPlantFlower:
		return flowerMaxAge
	case KindPlantRoot:
		return rootMaxAge
	}
	return stemMaxAge // stems and branches share a lifespan
}

// sporeCanInfect reports whether the organ is weak enough for a spore to
// settle: living plant tissue past half its own scaled lifespan.
func sporeCanInfect(n Tile) bool {
	if !n.IsPlant() || n.Kind == KindPlantWithered || n.Kind == KindPlantDiseased {
		return false
	}
	return n.Age > maxAgeFor(plantOrganBaseAge(n.Kind), n.Size)/2
}

// updateLife drives every organism state machine once. Reads come from the
// pre-stage grid, writes go to a clone; cross-cell effects (eating,
// infection, cluster movement) register their targets in touched so the
// raster scan cannot clobber them later in the same pass.
func (w *World) updateLife() {
	next := w.tiles.Clone()
	touched := map[[2]int]bool{}
	growth := w.seasonalGrowthModifier()

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if touched[[2]int{x, y}] {
				continue
			}
			t := w.tiles.At(x, y)
			switch t.Kind {
			case KindPlantStem:
				w.updateStem(x, y, t, growth, next, touched)
			case KindPlantLeaf:
				w.updateLeaf(x, y, t, next)
			case KindPlantBud:
				w.updateBud(x, y, t, growth, next)
			case KindPlantBranch:
				w.updateBranch(x, y, t, growth, next)
			case KindPlantFlower:
				w.updateFlower(x, y, t, growth, next)
			case KindPlantWithered:
				w.updateWithered(x, y, t, next)
			case KindPlantDiseased:
				w.updateDiseased(x, y, t, next, touched)
			case KindPlantRoot:
				w.updateRoot(x, y, t, growth, next, touched)
			case KindPillbugHead:
				w.updateHead(x, y, t, next, touched)
			case KindPillbugBody, KindPillbugLegs:
				w.updateSegment(x, y, t, next)
			case KindPillbugDecaying:
				w.updateDecaying(x, y, t, next)
			case KindSeed:
				w.updateSeed(x, y, t, growth, next, touched)
			case KindSpore:
				w.updateSpore(x, y, t, next, touched)
			}
		}
	}

	w.tiles = next
}

func (w *World) updateStem(x, y int, t Tile, growth float64, next *gridT, touched map[[2]int]bool) {
	age := satAdd(t.Age, 1)

	// Absorbing an adjacent free nutrient extends the stem's life.
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) || !w.chance(nutrientAbsorbChance) {
			continue
		}
		if next.At(nx, ny).Kind == KindNutrient {
			next.Set(nx, ny, Tile{})
			touched[[2]int{nx, ny}] = true
			age = satSub(age, nutrientAbsorbReward)
			break
		}
	}

	if age > maxAgeFor(stemMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPlantWithered, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(KindPlantStem, age, t.Size))

	gc := stemGrowthBase * growth * t.Size.GrowthMultiplier() * w.biomes.At(x, y).PlantGrowthModifier()

	// Vertical extension.
	if w.tiles.InBounds(x, y-1) && next.At(x, y-1).Kind == KindEmpty && w.chance(gc*stemGrowUpShare) {
		next.Set(x, y-1, Organism(KindPlantStem, 0, t.Size))
	}

	// Lateral buds become leaves and flowers later.
	if w.chance(gc * stemBudShare) {
		for _, dx := range [2]int{-1, 1} {
			if w.tiles.InBounds(x+dx, y) && next.At(x+dx, y).Kind == KindEmpty {
				next.Set(x+dx, y, Organism(KindPlantBud, 0, t.Size))
				break
			}
		}
	}

	// Roots push down to find nutrients.
	if w.tiles.InBounds(x, y+1) && w.chance(gc*stemRootShare) {
		below := next.At(x, y+1)
		if (below.Kind == KindEmpty || below.IsSoil()) && w.chance(0.5) {
			next.Set(x, y+1, Organism(KindPlantRoot, 0, t.Size))
		}
	}
}

func (w *World) updateLeaf(x, y int, t Tile, next *gridT) {
	age := satAdd(t.Age, 1)
	if age > maxAgeFor(leafMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPlantWithered, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(KindPlantLeaf, age, t.Size))

	// Photosynthesis sheds a nutrient into an adjacent gap during daylight.
	if w.IsDay() && w.chance(leafPhotosynthesisChance) {
		for _, d := range orthogonal {
			nx, ny := x+d[0], y+d[1]
			if w.tiles.InBounds(nx, ny) && next.At(nx, ny).Kind == KindEmpty {
				next.Set(nx, ny, Tile{Kind: KindNutrient})
				break
			}
		}
	}
}

func (w *World) updateBud(x, y int, t Tile, growth float64, next *gridT) {
	age := satAdd(t.Age, 1)
	if age > maxAgeFor(budMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPlantWithered, 0, t.Size))
		return
	}
	if age > budMatureAge && w.chance(budMatureChance*growth*t.Size.GrowthMultiplier()) {
		if w.chance(budBranchShare) {
			next.Set(x, y, Organism(KindPlantBranch, 0, t.Size))
		} else {
			next.Set(x, y, Organism(KindPlantFlower, 0, t.Size))
		}
		return
	}
	next.Set(x, y, Organism(KindPlantBud, age, t.Size))
}

func (w *World) updateBranch(x, y int, t Tile, growth float64, next *gridT) {
	age := satAdd(t.Age, 1)
	if age > maxAgeFor(branchMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPlantWithered, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(KindPlantBranch, age, t.Size))

	gc := stemGrowthBase * growth * t.Size.GrowthMultiplier() * w.biomes.At(x, y).PlantGrowthModifier()
	diagonals := [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

	if w.chance(gc * branchExtendShare) {
		d := diagonals[w.rng.Intn(4)]
		nx, ny := x+d[0], y+d[1]
		if w.tiles.InBounds(nx, ny) && next.At(nx, ny).Kind == KindEmpty {
			next.Set(nx, ny, Organism(KindPlantBranch, 0, t.Size))
			return
		}
	}
	if w.chance(gc * branchSproutShare) {
		d := diagonals[w.rng.Intn(4)]
		nx, ny := x+d[0], y+d[1]
		if w.tiles.InBounds(nx, ny) && next.At(nx, ny).Kind == KindEmpty {
			kind := KindPlantLeaf
			if w.chance(0.5) {
				kind = KindPlantBud
			}
			next.Set(nx, ny, Organism(kind, 0, t.Size))
		}
	}
}

func (w *World) updateFlower(x, y int, t Tile, growth float64, next *gridT) {
	age := satAdd(t.Age, 1)
	if age > maxAgeFor(flowerMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPlantWithered, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(KindPlantFlower, age, t.Size))

	if w.chance(w.cfg.Params.FlowerSeedChance * growth * (1 + w.windStrength)) {
		w.launchSeed(x, y-1, t.Size)
	}
}

func (w *World) updateWithered(x, y int, t Tile, next *gridT) {
	age := satAdd(t.Age, witheredAgeStep)
	if age > witheredMaxAge {
		next.Set(x, y, Tile{Kind: KindNutrient})
		return
	}
	next.Set(x, y, Organism(KindPlantWithered, age, t.Size))

	if w.windStrength > sporeWindThreshold && w.chance(witheredSporeChance) {
		for _, d := range orthogonal {
			nx, ny := x+d[0], y+d[1]
			if w.tiles.InBounds(nx, ny) && next.At(nx, ny).Kind == KindEmpty {
				next.Set(nx, ny, Spore(0))
				break
			}
		}
	}
}

func (w *World) updateDiseased(x, y int, t Tile, next *gridT, touched map[[2]int]bool) {
	age := satAdd(t.Age, 1)
	if age > 60 {
		next.Set(x, y, Organism(KindPlantWithered, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(KindPlantDiseased, age, t.Size))

	if w.windStrength > sporeWindThreshold && w.chance(diseasedSporeChance) {
		for _, d := range orthogonal {
			nx, ny := x+d[0], y+d[1]
			if w.tiles.InBounds(nx, ny) && next.At(nx, ny).Kind == KindEmpty {
				next.Set(nx, ny, Spore(0))
				break
			}
		}
	}

	// The infection creeps into healthy neighbors more aggressively as it
	// progresses.
	spread := diseaseSpreadBase * float64(age) / 60
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) {
			continue
		}
		n := next.At(nx, ny)
		if n.IsPlant() && n.Kind != KindPlantWithered && n.Kind != KindPlantDiseased && w.chance(spread) {
			next.Set(nx, ny, Organism(KindPlantDiseased, 0, n.Size))
			touched[[2]int{nx, ny}] = true
		}
	}
}

func (w *World) updateRoot(x, y int, t Tile, growth float64, next *gridT, touched map[[2]int]bool) {
	age := satAdd(t.Age, 1)

	// Harvest free nutrients and enriched soil within reach.
	radius := 1 + int(t.Size)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.tiles.InBounds(nx, ny) || !w.chance(rootAbsorbChance) {
				continue
			}
			switch n := next.At(nx, ny); n.Kind {
			case KindNutrient:
				next.Set(nx, ny, Tile{})
				touched[[2]int{nx, ny}] = true
				age = satSub(age, rootAbsorbReward)
			case KindNutrientDirt:
				level := satSub(n.Amount, rootSoilDrain)
				if level > 0 {
					next.Set(nx, ny, NutrientDirt(level))
				} else {
					next.Set(nx, ny, Tile{Kind: KindDirt})
				}
				age = satSub(age, rootSoilReward)
			}
		}
	}

	if age > maxAgeFor(rootMaxAge, t.Size) {
		next.Set(x, y, Tile{Kind: KindNutrient})
		return
	}
	next.Set(x, y, Organism(KindPlantRoot, age, t.Size))

	// Extend deeper into the soil.
	gc := stemGrowthBase * growth * t.Size.GrowthMultiplier() * w.biomes.At(x, y).PlantGrowthModifier()
	if w.chance(gc * rootExtendShare) {
		dirs := [3][2]int{{0, 1}, {-1, 1}, {1, 1}}
		d := dirs[w.rng.Intn(3)]
		nx, ny := x+d[0], y+d[1]
		if w.tiles.InBounds(nx, ny) && next.At(nx, ny).IsSoil() {
			next.Set(nx, ny, Organism(KindPlantRoot, 0, t.Size))
		}
	}
}

// edibleByPillbug maps a food tile to its effective size class for the
// eating-efficiency table; free nutrients use the bug's own class.
func edibleByPillbug(bug Tile, food Tile) (SizeClass, bool) {
	switch food.Kind {
	case KindPlantLeaf, KindPlantWithered, KindPlantDiseased:
		return food.Size, true
	case KindNutrient:
		return bug.Size, true
	}
	return SizeMedium, false
}

func (w *World) updateHead(x, y int, t Tile, next *gridT, touched map[[2]int]bool) {
	age := satAdd(t.Age, 1)
	ate := false

	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) {
			continue
		}
		food := next.At(nx, ny)
		foodSize, ok := edibleByPillbug(t, food)
		if !ok || !w.chance(eatingEfficiency(t.Size, foodSize)) {
			continue
		}
		if food.Kind == KindNutrient {
			next.Set(nx, ny, Tile{})
		} else {
			next.Set(nx, ny, Tile{Kind: KindNutrient})
		}
		touched[[2]int{nx, ny}] = true
		age = satSub(age, eatAgeReward)
		ate = true
		break
	}

	// A well-fed head may bud off a new pillbug nearby.
	if ate && w.chance(reproduceChance) {
		size := t.Size
		if w.chance(mutationChance) {
			size = randomSize(w.rng)
		}
		for _, d := range neighbors8 {
			nx, ny := x+d[0], y+d[1]
			if w.tiles.InBounds(nx, ny) && next.At(nx, ny).Kind == KindEmpty {
				next.Set(nx, ny, Organism(KindPillbugHead, 0, size))
				touched[[2]int{nx, ny}] = true
				break
			}
		}
	}

	if age > maxAgeFor(pillbugMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPillbugDecaying, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(KindPillbugHead, age, t.Size))

	move := w.decideMovement(x, y, Organism(KindPillbugHead, age, t.Size))
	if dx, dy, ok := move.roll(w); ok && (dx != 0 || dy != 0) {
		w.moveCluster(x, y, t, dx, dy, next, touched)
	}
}

func (w *World) updateSegment(x, y int, t Tile, next *gridT) {
	age := satAdd(t.Age, 1)
	if age > maxAgeFor(pillbugMaxAge, t.Size) {
		next.Set(x, y, Organism(KindPillbugDecaying, 0, t.Size))
		return
	}
	next.Set(x, y, Organism(t.Kind, age, t.Size))
}

func (w *World) updateDecaying(x, y int, t Tile, next *gridT) {
	age := satAdd(t.Age, 1)
	if age > decayingMaxAge {
		next.Set(x, y, Tile{Kind: KindNutrient})
		return
	}
	next.Set(x, y, Organism(KindPillbugDecaying, age, t.Size))
}

func (w *World) updateSeed(x, y int, t Tile, growth float64, next *gridT, touched map[[2]int]bool) {
	age := satAdd(t.Age, 1)
	if age > seedMaxAge {
		next.Set(x, y, Tile{Kind: KindNutrient})
		return
	}

	// Germination needs soil underfoot and calm air.
	if w.tiles.InBounds(x, y+1) && w.tiles.At(x, y+1).IsSoil() {
		if w.chance(germinationBase * growth / (1 + 2*w.windStrength)) {
			next.Set(x, y, Organism(KindPlantStem, 0, t.Size))
			next.Set(x, y+1, Organism(KindPlantRoot, 0, t.Size))
			touched[[2]int{x, y + 1}] = true
			return
		}
	}
	next.Set(x, y, Seed(age, t.Size))
}

func (w *World) updateSpore(x, y int, t Tile, next *gridT, touched map[[2]int]bool) {
	age := satAdd(t.Age, 1)
	if age > sporeMaxAge {
		next.Set(x, y, Tile{})
		return
	}

	// Spores settle into weakened plants: organs past half their lifespan.
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) {
			continue
		}
		n := next.At(nx, ny)
		if sporeCanInfect(n) && w.chance(sporeInfectChance) {
			next.Set(nx, ny, Organism(KindPlantDiseased, 0, n.Size))
			touched[[2]int{nx, ny}] = true
			next.Set(x, y, Tile{})
			return
		}
	}
	next.Set(x, y, Spore(age))
}
