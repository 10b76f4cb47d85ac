package terrarium

// checkPlantSupport is the light per-organ pass after wind and projectiles
// may have knocked structures loose. An organ with nothing to hold onto
// drops a cell when it can, and otherwise risks withering on the spot.
func (w *World) checkPlantSupport() {
	taken := map[[2]int]bool{}
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			t := w.tiles.At(x, y)
			if !t.IsPlant() || t.Kind == KindPlantWithered {
				continue
			}
			if w.organSupported(x, y, t) {
				continue
			}
			dest := [2]int{x, y + 1}
			if w.tiles.InBounds(x, y+1) && w.tiles.At(x, y+1).Kind == KindEmpty && !taken[dest] {
				taken[dest] = true
				w.queueChange(x, y, Tile{})
				w.queueChange(x, y+1, t)
				continue
			}
			if w.chance(w.cfg.Params.UnsupportedWitherChance) {
				w.queueChange(x, y, Organism(KindPlantWithered, 0, t.Size))
			}
		}
	}
	w.applyChanges()
}

// organSupported checks the cells an organ can physically rest on or grip:
// below, the two below-diagonals, and the sides.
func (w *World) organSupported(x, y int, t Tile) bool {
	if y == w.h-1 {
		return true
	}
	for _, d := range [5][2]int{{0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if !w.tiles.InBounds(nx, ny) {
			continue
		}
		n := w.tiles.At(nx, ny)
		if n.IsSoil() {
			return true
		}
		if n.IsPlant() && n.Size == t.Size {
			return true
		}
	}
	return false
}
