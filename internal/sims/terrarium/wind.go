package terrarium

import "math"

// windSusceptibility is the per-type dispersal factor; seeds defer to their
// size class.
func windSusceptibility(t Tile) float64 {
	switch t.Kind {
	case KindSeed:
		return t.Size.WindSusceptibility()
	case KindSpore:
		return 1.0
	case KindNutrient:
		return 0.6
	case KindWater:
		return 0.4
	}
	return 0
}

// applyWindDispersal blows light particles across the grid when the wind is
// strong enough. Targets follow the wind vector with a little jitter; a
// particle blown out of bounds is gone. Reads see only the pre-stage grid:
// relocations accumulate in the change queue, landing cells are claimed in a
// taken set, and the whole stage commits at once.
func (w *World) applyWindDispersal() {
	if w.windStrength <= w.cfg.Params.WindMinStrength {
		return
	}

	dirX := math.Cos(w.windDirection)
	dirY := math.Sin(w.windDirection)
	reach := 1 + w.windStrength

	taken := map[[2]int]bool{}
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if taken[[2]int{x, y}] {
				continue
			}
			t := w.tiles.At(x, y)
			if !t.WindDispersible() {
				continue
			}
			if !w.chance(w.windStrength * windSusceptibility(t) * w.cfg.Params.WindDispersalBase) {
				continue
			}

			tx := x + int(math.Round(dirX*reach)) + w.rng.Intn(3) - 1
			ty := y + int(math.Round(dirY*reach)) + w.rng.Intn(3) - 1
			if tx == x && ty == y {
				continue
			}
			if !w.tiles.InBounds(tx, ty) {
				w.queueChange(x, y, Tile{})
				taken[[2]int{x, y}] = true
				continue
			}
			if taken[[2]int{tx, ty}] {
				continue
			}

			target := w.tiles.At(tx, ty)
			switch {
			case target.Kind == KindEmpty:
				w.queueChange(x, y, Tile{})
				w.queueChange(tx, ty, t)
				taken[[2]int{x, y}] = true
				taken[[2]int{tx, ty}] = true
			case target.IsWater() && target.Amount <= shallowWaterDepth && !t.IsWater():
				// The particle displaces the puddle; the water tries to
				// scatter into an orthogonal gap or is lost.
				w.queueChange(x, y, Tile{})
				w.queueChange(tx, ty, t)
				taken[[2]int{x, y}] = true
				taken[[2]int{tx, ty}] = true
				for _, d := range orthogonal {
					wx, wy := tx+d[0], ty+d[1]
					if w.tiles.InBounds(wx, wy) && w.tiles.At(wx, wy).Kind == KindEmpty && !taken[[2]int{wx, wy}] {
						w.queueChange(wx, wy, target)
						taken[[2]int{wx, wy}] = true
						break
					}
				}
			default:
				for _, d := range orthogonal {
					fx, fy := tx+d[0], ty+d[1]
					if w.tiles.InBounds(fx, fy) && w.tiles.At(fx, fy).Kind == KindEmpty && !taken[[2]int{fx, fy}] {
						w.queueChange(x, y, Tile{})
						w.queueChange(fx, fy, t)
						taken[[2]int{x, y}] = true
						taken[[2]int{fx, fy}] = true
						break
					}
				}
			}
		}
	}
	w.applyChanges()
}
