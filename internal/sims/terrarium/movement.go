package terrarium

// Strategy enumerates the pillbug decision outcomes, in priority order
// AvoidDanger > SeekFood > Social > Explore > Rest.
type Strategy uint8

const (
	StrategyAvoid Strategy = iota
	StrategySeekFood
	StrategySocial
	StrategyExplore
	StrategyRest
)

func (s Strategy) String() string {
	switch s {
	case StrategyAvoid:
		return "avoid"
	case StrategySeekFood:
		return "seek-food"
	case StrategySocial:
		return "social"
	case StrategyExplore:
		return "explore"
	default:
		return "rest"
	}
}

// moveChance is the probability a pillbug actually acts on the strategy
// this tick. Fleeing is urgent; resting almost never moves.
func (s Strategy) moveChance() float64 {
	switch s {
	case StrategyAvoid:
		return 0.9
	case StrategySeekFood:
		return 0.8
	case StrategySocial:
		return 0.4
	case StrategyExplore:
		return 0.3
	default:
		return 0.1
	}
}

// movement is a resolved decision: a strategy plus its unit direction.
type movement struct {
	strategy Strategy
	dx, dy   int
}

// roll converts the decision into an actual step for this tick, drawing the
// act-probability and, for exploration, a random direction.
func (m movement) roll(w *World) (dx, dy int, ok bool) {
	if !w.chance(m.strategy.moveChance()) {
		return 0, 0, false
	}
	if m.strategy == StrategyExplore {
		d := orthogonal[w.rng.Intn(4)]
		return d[0], d[1], true
	}
	if m.strategy == StrategyRest {
		return 0, 0, true
	}
	return m.dx, m.dy, true
}

const (
	socialEngageChance = 0.3
	juvenileAge        = 20
	elderlyAge         = 120
	elderlyRestChance  = 0.6
)

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// pillbugFood reports whether the tile is worth walking toward.
func pillbugFood(t Tile) bool {
	switch t.Kind {
	case KindPlantLeaf, KindPlantWithered, KindPlantDiseased, KindNutrient:
		return true
	}
	return false
}

// decideMovement runs the size-scaled scan around the head and picks a
// strategy. Juveniles always explore; the elderly mostly rest.
func (w *World) decideMovement(x, y int, head Tile) movement {
	if head.Age < juvenileAge {
		return movement{strategy: StrategyExplore}
	}
	if head.Age > elderlyAge && w.chance(elderlyRestChance) {
		return movement{strategy: StrategyRest}
	}

	radius := 2 + int(head.Size)

	// Danger directly below: water.
	if w.tiles.InBounds(x, y+1) && w.tiles.At(x, y+1).IsWater() {
		return movement{strategy: StrategyAvoid, dx: 0, dy: -1}
	}

	var food, social *[2]int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.tiles.InBounds(nx, ny) {
				continue
			}
			n := w.tiles.At(nx, ny)

			// A bigger pillbug nearby trumps everything: run the other way.
			if n.Kind == KindPillbugHead && n.Size > head.Size {
				return movement{strategy: StrategyAvoid, dx: sign(-dx), dy: sign(-dy)}
			}
			// Sand hanging over empty space may collapse onto us.
			if n.Kind == KindSand && w.tiles.InBounds(nx, ny+1) && w.tiles.At(nx, ny+1).Kind == KindEmpty {
				return movement{strategy: StrategyAvoid, dx: sign(-dx), dy: sign(-dy)}
			}

			if food == nil && pillbugFood(n) {
				food = &[2]int{sign(dx), sign(dy)}
			}
			if social == nil && n.Kind == KindPillbugHead && n.Size == head.Size {
				social = &[2]int{sign(dx), sign(dy)}
			}
		}
	}

	if food != nil {
		return movement{strategy: StrategySeekFood, dx: food[0], dy: food[1]}
	}
	if social != nil && w.chance(socialEngageChance) {
		return movement{strategy: StrategySocial, dx: social[0], dy: social[1]}
	}
	return movement{strategy: StrategyExplore}
}

// moveCluster relocates the whole connected pillbug by one step. The move
// happens only when every segment's destination is empty, a nutrient (which
// gets grazed), or another segment of the same cluster; otherwise the
// cluster stays put this tick.
func (w *World) moveCluster(x, y int, head Tile, dx, dy int, next *gridT, touched map[[2]int]bool) {
	members := [][2]int{{x, y}}
	inCluster := map[[2]int]bool{{x, y}: true}
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbors8 {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			pos := [2]int{nx, ny}
			if inCluster[pos] || !w.tiles.InBounds(nx, ny) {
				continue
			}
			n := w.tiles.At(nx, ny)
			if !n.IsPillbug() || n.Size != head.Size {
				continue
			}
			inCluster[pos] = true
			members = append(members, pos)
			stack = append(stack, pos)
		}
	}

	grazed := 0
	for _, m := range members {
		tx, ty := m[0]+dx, m[1]+dy
		if !w.tiles.InBounds(tx, ty) {
			return
		}
		if inCluster[[2]int{tx, ty}] {
			continue
		}
		switch next.At(tx, ty).Kind {
		case KindEmpty:
		case KindNutrient:
			grazed++
		default:
			return
		}
	}

	// Pick up the post-aging segment tiles, then relocate atomically.
	tiles := make([]Tile, len(members))
	for i, m := range members {
		tiles[i] = next.At(m[0], m[1])
		if !tiles[i].IsPillbug() {
			tiles[i] = w.tiles.At(m[0], m[1])
		}
	}
	for _, m := range members {
		next.Set(m[0], m[1], Tile{})
		touched[m] = true
	}
	for i, m := range members {
		tx, ty := m[0]+dx, m[1]+dy
		tile := tiles[i]
		if tile.Kind == KindPillbugHead && grazed > 0 {
			tile.Age = satSub(tile.Age, uint8(grazed*grazeAgeReward))
		}
		next.Set(tx, ty, tile)
		touched[[2]int{tx, ty}] = true
	}
}
