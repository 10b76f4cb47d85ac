package terrarium

// neighbors8 lists the Moore neighborhood offsets.
var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// sameFamily reports whether a and b belong to the same organism family and
// size class, which is the adjacency rule for connected components.
func sameFamily(a, b Tile) bool {
	if a.Size != b.Size {
		return false
	}
	return (a.IsPlant() && b.IsPlant()) || (a.IsPillbug() && b.IsPillbug())
}

// solidGround reports whether the tile can bear weight on its own.
func solidGround(t Tile) bool { return t.IsSoil() }

// structuralPlantOrgan reports whether the organ counts as solid support for
// neighbors (anchoring organs, not foliage).
func structuralPlantOrgan(t Tile) bool {
	switch t.Kind {
	case KindPlantStem, KindPlantBranch, KindPlantRoot:
		return true
	}
	return false
}

// touchesSolid reports whether any 8-neighbor of (x, y) is load-bearing
// ground, or the cell sits on the bottom row.
func (w *World) touchesSolid(x, y int) bool {
	if y == w.h-1 {
		return true
	}
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) {
			continue
		}
		if solidGround(w.tiles.At(nx, ny)) {
			return true
		}
	}
	return false
}

// hasSupport is the per-tile support test. Soil and structural plant organs
// count; a pillbug segment neighbor only counts when that neighbor itself
// touches solid ground, which prevents two floating segments from holding
// each other up.
func (w *World) hasSupport(x, y int) bool {
	if y == w.h-1 {
		return true
	}
	self := w.tiles.At(x, y)
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) {
			continue
		}
		n := w.tiles.At(nx, ny)
		if solidGround(n) {
			return true
		}
		if self.IsPlant() && structuralPlantOrgan(n) {
			if n.Size == self.Size {
				continue // same-organism organs are handled by the cluster test
			}
			if w.touchesSolid(nx, ny) {
				return true
			}
		}
		if self.IsPillbug() && n.IsPillbug() && w.touchesSolid(nx, ny) {
			return true
		}
	}
	return false
}

// triviallySupported is the cheap pre-filter: a direct solid below-neighbor,
// or a root fully enclosed in soil, never needs the flood fill.
func (w *World) triviallySupported(x, y int) bool {
	if y == w.h-1 {
		return true
	}
	if w.tiles.InBounds(x, y+1) {
		below := w.tiles.At(x, y+1)
		if solidGround(below) {
			return true
		}
	}
	if w.tiles.At(x, y).Kind == KindPlantRoot {
		enclosed := true
		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := x+d[0], y+d[1]
			if !w.tiles.InBounds(nx, ny) || !w.tiles.At(nx, ny).IsSoil() {
				enclosed = false
				break
			}
		}
		if enclosed {
			return true
		}
	}
	return false
}

// applyStructuralGravity discovers unsupported organism clusters and either
// drops each one a single row atomically or, for plants that cannot fall,
// withers members probabilistically. Pillbug clusters that cannot fall stay
// aloft unchanged.
func (w *World) applyStructuralGravity() {
	total := w.w * w.h
	visited := make([]bool, total)
	anchored := make([]bool, total)

	for i, t := range w.tiles.Cells() {
		if t.IsOrganism() && w.triviallySupported(i%w.w, i/w.w) {
			anchored[i] = true
			visited[i] = true
		}
	}

	var stack [][2]int
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := w.tiles.Index(x, y)
			if visited[idx] {
				continue
			}
			seed := w.tiles.At(x, y)
			if !seed.IsOrganism() {
				continue
			}

			// Worklist BFS over the 8-connected same-family, same-size
			// component.
			members := [][2]int{{x, y}}
			supported := false
			visited[idx] = true
			stack = append(stack[:0], [2]int{x, y})
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur[0], cur[1]
				if w.hasSupport(cx, cy) {
					supported = true
				}
				for _, d := range neighbors8 {
					nx, ny := cx+d[0], cy+d[1]
					if !w.tiles.InBounds(nx, ny) {
						continue
					}
					nIdx := w.tiles.Index(nx, ny)
					n := w.tiles.At(nx, ny)
					if !sameFamily(seed, n) {
						continue
					}
					if anchored[nIdx] {
						supported = true
						continue
					}
					if visited[nIdx] {
						continue
					}
					visited[nIdx] = true
					members = append(members, [2]int{nx, ny})
					stack = append(stack, [2]int{nx, ny})
				}
			}

			if supported {
				continue
			}
			if w.resolveUnsupportedCluster(seed, members) {
				// Mark the landing cells so the raster scan cannot
				// rediscover a fallen cluster and drop it again this pass.
				for _, m := range members {
					visited[w.tiles.Index(m[0], m[1]+1)] = true
				}
			}
		}
	}
}

// resolveUnsupportedCluster drops the whole cluster one row when every
// member's below-cell is empty or in-cluster; otherwise plant clusters
// wither probabilistically. It reports whether the cluster fell.
func (w *World) resolveUnsupportedCluster(seed Tile, members [][2]int) bool {
	inCluster := make(map[[2]int]bool, len(members))
	for _, m := range members {
		inCluster[m] = true
	}

	canFall := true
	for _, m := range members {
		bx, by := m[0], m[1]+1
		if !w.tiles.InBounds(bx, by) {
			canFall = false
			break
		}
		if inCluster[[2]int{bx, by}] {
			continue
		}
		if w.tiles.At(bx, by).Kind != KindEmpty {
			canFall = false
			break
		}
	}

	if canFall {
		// Clear every member first, then write every member one row down,
		// so the relocation is atomic regardless of iteration order.
		for _, m := range members {
			w.queueChange(m[0], m[1], Tile{})
		}
		for _, m := range members {
			w.queueChange(m[0], m[1]+1, w.tiles.At(m[0], m[1]))
		}
		w.applyChanges()
		return true
	}

	if !seed.IsPlant() {
		return false // stuck pillbugs simply stay aloft
	}
	for _, m := range members {
		t := w.tiles.At(m[0], m[1])
		if t.Kind == KindPlantWithered || t.Kind == KindPlantDiseased {
			continue
		}
		if w.chance(w.cfg.Params.UnsupportedWitherChance) {
			w.queueChange(m[0], m[1], Organism(KindPlantWithered, 0, t.Size))
		}
	}
	w.applyChanges()
	return false
}
