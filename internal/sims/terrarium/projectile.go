package terrarium

import "math"

// SeedProjectile is a seed in ballistic flight: a transient off-grid entity
// with continuous position and velocity carrying the seed tile it will
// become on landing.
type SeedProjectile struct {
	X, Y   float64
	VX, VY float64
	Seed   Tile
	Age    uint8
	Bounce uint8
}

const (
	projectileMaxBounces  = 2
	projectileBounceSpeed = 1.0
	bounceEnergyLoss      = 0.4
	bounceFriction        = 0.7
)

// launchSeed spawns a projectile from a flower. Launch speed comes from the
// organ size, the angle is random with an upward bias, and the current wind
// adds a push along its vector.
func (w *World) launchSeed(x, y int, size SizeClass) {
	var minSpeed, span float64
	switch size {
	case SizeSmall:
		minSpeed, span = 1.6, 0.8
	case SizeLarge:
		minSpeed, span = 0.9, 0.6
	default:
		minSpeed, span = 1.2, 0.8
	}
	speed := minSpeed + w.rng.Float64()*span
	angle := -math.Pi/2 + (w.rng.Float64()*2-1)*0.9

	vx := math.Cos(angle) * speed
	vy := math.Sin(angle) * speed
	vx += math.Cos(w.windDirection) * w.windStrength * 0.5
	vy += math.Sin(w.windDirection) * w.windStrength * 0.5

	w.projectiles = append(w.projectiles, SeedProjectile{
		X:    float64(x) + 0.5,
		Y:    float64(y) + 0.5,
		VX:   vx,
		VY:   vy,
		Seed: Seed(0, size),
	})
}

// updateProjectiles integrates every seed in flight: gravity, wind, bounce,
// and landing. Projectiles leaving the world are discarded.
func (w *World) updateProjectiles() {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		p.Age = satAdd(p.Age, 1)
		p.VY += w.cfg.Params.ProjectileGravity

		windAccel := w.cfg.Params.ProjectileWindAccel * w.windStrength * p.Seed.Size.WindSusceptibility()
		p.VX += math.Cos(w.windDirection) * windAccel
		p.VY += math.Sin(w.windDirection) * windAccel

		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 || p.X >= float64(w.w) || p.Y < 0 || p.Y >= float64(w.h) {
			continue // left the world
		}

		tx := int(math.Floor(p.X))
		ty := int(math.Floor(p.Y))
		cell := w.tiles.At(tx, ty)
		switch {
		case cell.Kind == KindEmpty:
			kept = append(kept, p)
		case cell.IsWater():
			w.tiles.Set(tx, ty, p.Seed)
		default:
			if p.Bounce < projectileMaxBounces && p.VY > projectileBounceSpeed {
				p.VY = -p.VY * bounceEnergyLoss
				p.VX *= bounceFriction
				p.Bounce++
				// Nudge off the surface so the next integration step does
				// not immediately re-collide.
				if p.VY > 0 {
					p.Y = float64(ty) + 1.1
				} else {
					p.Y = float64(ty) - 0.1
				}
				kept = append(kept, p)
				continue
			}
			w.landSeed(tx, ty, p.Seed)
		}
	}
	w.projectiles = kept
}

// landSeed rests the seed in the first empty orthogonal neighbor of the
// collision cell; with nowhere to rest the seed is lost.
func (w *World) landSeed(x, y int, seed Tile) {
	for _, d := range [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
		nx, ny := x+d[0], y+d[1]
		if w.tiles.InBounds(nx, ny) && w.tiles.At(nx, ny).Kind == KindEmpty {
			w.tiles.Set(nx, ny, seed)
			return
		}
	}
}
