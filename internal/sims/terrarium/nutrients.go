package terrarium

// orthogonal lists the von Neumann neighborhood offsets.
var orthogonal = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// diffuseNutrients gives each free nutrient a small chance to wander one
// orthogonal step. Landing on soil absorbs it into the slow-release
// reservoir that roots harvest later. Each target cell is claimed at most
// once per pass; a nutrient whose target is already claimed waits.
func (w *World) diffuseNutrients() {
	taken := map[[2]int]bool{}
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if w.tiles.At(x, y).Kind != KindNutrient {
				continue
			}
			if !w.chance(w.cfg.Params.NutrientDiffusionChance) {
				continue
			}
			d := orthogonal[w.rng.Intn(4)]
			nx, ny := x+d[0], y+d[1]
			if !w.tiles.InBounds(nx, ny) || taken[[2]int{nx, ny}] {
				continue
			}
			switch target := w.tiles.At(nx, ny); target.Kind {
			case KindEmpty:
				w.queueChange(x, y, Tile{})
				w.queueChange(nx, ny, Tile{Kind: KindNutrient})
				taken[[2]int{nx, ny}] = true
			case KindDirt:
				if w.chance(w.cfg.Params.SoilEnrichChance) {
					w.queueChange(x, y, Tile{})
					w.queueChange(nx, ny, NutrientDirt(120))
					taken[[2]int{nx, ny}] = true
				}
			case KindNutrientDirt:
				w.queueChange(x, y, Tile{})
				w.queueChange(nx, ny, NutrientDirt(satAdd(target.Amount, 40)))
				taken[[2]int{nx, ny}] = true
			}
		}
	}
	w.applyChanges()
}
