package terrarium

// updateTerrain runs granular physics for sand and water plus slow gravity
// for free particles. The scan runs bottom-to-top so downward motion
// cascades correctly within a single pass. Reads come from the pre-stage
// grid; writes land in a cloned buffer that is swapped in at the end.
func (w *World) updateTerrain() {
	next := w.tiles.Clone()

	for y := w.h - 1; y >= 0; y-- {
		for x := 0; x < w.w; x++ {
			t := w.tiles.At(x, y)
			switch t.Kind {
			case KindSand:
				w.fallSand(x, y, next)
			case KindWater:
				w.flowWater(x, y, t.Amount, next)
			case KindSeed:
				w.fallParticle(x, y, t, 0.6, next)
			case KindSpore:
				w.fallParticle(x, y, t, 0.3, next)
			case KindNutrient:
				w.fallParticle(x, y, t, 0.2, next)
			}
		}
	}

	w.tiles = next
}

// fallSand drops sand straight down, or slides it diagonally at random so
// piles form natural slopes.
func (w *World) fallSand(x, y int, next *gridT) {
	if next.At(x, y).Kind != KindSand {
		return // displaced earlier in this pass
	}
	if next.InBounds(x, y+1) && next.At(x, y+1).Kind == KindEmpty {
		next.Set(x, y, Tile{})
		next.Set(x, y+1, Tile{Kind: KindSand})
		return
	}
	dx := 1
	if w.rng.Intn(2) == 0 {
		dx = -1
	}
	for _, d := range [2]int{dx, -dx} {
		if next.InBounds(x+d, y+1) && next.At(x+d, y+1).Kind == KindEmpty {
			next.Set(x, y, Tile{})
			next.Set(x+d, y+1, Tile{Kind: KindSand})
			return
		}
	}
}

// fallParticle drops a light free particle one cell with the given chance.
func (w *World) fallParticle(x, y int, t Tile, p float64, next *gridT) {
	if next.At(x, y).Kind != t.Kind {
		return
	}
	if next.InBounds(x, y+1) && next.At(x, y+1).Kind == KindEmpty && w.chance(p) {
		next.Set(x, y, Tile{})
		next.Set(x, y+1, t)
	}
}

// flowWater is the depth-aware water update: soak into soil, evaporate,
// fall, equalize pressure with water below, then flow laterally.
func (w *World) flowWater(x, y int, depth uint8, next *gridT) {
	if next.At(x, y).Kind != KindWater {
		return
	}
	biome := w.biomes.At(x, y)

	if w.soakIntoSoil(x, y, depth, next) {
		return
	}
	if w.evaporate(x, y, depth, biome, next) {
		return
	}

	// Vertical flow.
	if next.InBounds(x, y+1) {
		below := next.At(x, y+1)
		if below.CanWaterFlowInto() {
			fallDepth := depth
			if depth > 50 {
				fallDepth = satAdd(depth, 10) // deep water gains momentum
			}
			next.Set(x, y, Tile{})
			next.Set(x, y+1, Water(fallDepth))
			return
		}
		if below.IsWater() {
			diff := int(depth) - int(below.Amount)
			if diff > 10 {
				next.Set(x, y, Water(satSub(depth, 5)))
				next.Set(x, y+1, Water(satAdd(below.Amount, 5)))
				return
			}
			if diff < -10 {
				// Pressure from the heavier column below pushes water up.
				next.Set(x, y, Water(satAdd(depth, 5)))
				next.Set(x, y+1, Water(satSub(below.Amount, 5)))
				return
			}
		}
	}

	w.flowLateral(x, y, depth, biome, next)
}

// soakIntoSoil lets light and medium water seep into adjacent soil,
// enriching it toward nutrient dirt once enough has been absorbed.
func (w *World) soakIntoSoil(x, y int, depth uint8, next *gridT) bool {
	if depth > 80 || !w.chance(w.cfg.Params.AbsorptionChance) {
		return false
	}
	targets := [3][2]int{{x, y + 1}, {x - 1, y}, {x + 1, y}}
	for _, pos := range targets {
		ax, ay := pos[0], pos[1]
		if !next.InBounds(ax, ay) {
			continue
		}
		soil := next.At(ax, ay)
		if !soil.IsSoil() {
			continue
		}

		var absorbed uint8
		switch {
		case depth <= shallowWaterDepth:
			absorbed = depth
		case depth <= 50:
			absorbed = uint8(20 + w.rng.Intn(15))
		default:
			absorbed = uint8(10 + w.rng.Intn(20))
		}

		remaining := satSub(depth, absorbed)
		if remaining > 10 {
			next.Set(x, y, Water(remaining))
		} else {
			next.Set(x, y, Tile{})
		}

		if absorbed >= 20 && w.chance(w.cfg.Params.SoilEnrichChance) {
			switch soil.Kind {
			case KindDirt, KindSand:
				next.Set(ax, ay, NutrientDirt(100))
			case KindNutrientDirt:
				next.Set(ax, ay, NutrientDirt(satAdd(soil.Amount, 20)))
			}
		}
		return true
	}
	return false
}

// evaporate removes water probabilistically; the rate is inverse to depth
// and scaled by daylight, temperature, and biome moisture retention.
func (w *World) evaporate(x, y int, depth uint8, biome Biome, next *gridT) bool {
	var base float64
	switch {
	case depth <= shallowWaterDepth:
		base = 0.08
	case depth <= 80:
		base = 0.02
	case depth <= 150:
		base = 0.01
	default:
		base = 0.005
	}
	dayMod := 0.8
	if w.IsDay() {
		dayMod = 1.5
	}
	temp01 := (w.temperature + 1) * 0.5
	rate := base * dayMod * (0.5 + temp01) * (2 - biome.MoistureRetention()) * w.cfg.Params.EvaporationScale
	if !w.chance(rate) {
		return false
	}
	if depth <= shallowWaterDepth {
		next.Set(x, y, Tile{})
		return true
	}
	newDepth := satSub(depth, uint8(10+w.rng.Intn(10)))
	if newDepth > 0 {
		next.Set(x, y, Water(newDepth))
	} else {
		next.Set(x, y, Tile{})
	}
	return true
}

// flowLateral spreads water sideways under pressure. Wetlands resist the
// flow to encourage pooling; drylands let it run freely. Diagonal-down
// targets take priority over flat ones.
func (w *World) flowLateral(x, y int, depth uint8, biome Biome, next *gridT) {
	flowFactor := 2 - biome.MoistureRetention()*w.cfg.Params.FlowResistance
	if flowFactor < 0.2 {
		flowFactor = 0.2
	}
	if !w.chance(float64(depth) / 255 * flowFactor) {
		return
	}

	dx := 1
	if w.rng.Intn(2) == 0 {
		dx = -1
	}
	candidates := [4][2]int{
		{x + dx, y + 1}, {x - dx, y + 1},
		{x + dx, y}, {x - dx, y},
	}
	for _, pos := range candidates {
		tx, ty := pos[0], pos[1]
		if !next.InBounds(tx, ty) {
			continue
		}
		target := next.At(tx, ty)
		switch {
		case target.CanWaterFlowInto():
			moved := depth / 2
			if moved == 0 {
				moved = depth
			}
			remaining := depth - moved
			if remaining < 10 {
				moved = depth
				remaining = 0
			}
			if remaining > 0 {
				next.Set(x, y, Water(remaining))
			} else {
				next.Set(x, y, Tile{})
			}
			next.Set(tx, ty, Water(moved))
			return
		case target.IsWater() && target.Amount+10 < depth:
			transfer := (depth - target.Amount) / 2
			next.Set(x, y, Water(satSub(depth, transfer)))
			next.Set(tx, ty, Water(satAdd(target.Amount, transfer)))
			return
		}
	}
}
