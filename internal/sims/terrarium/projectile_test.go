package terrarium

import (
	"math"
	"testing"
)

func TestProjectileFliesStraightWithoutForces(t *testing.T) {
	world := quietWorld(20, 10)
	world.projectiles = append(world.projectiles, SeedProjectile{
		X: 2.5, Y: 5.5, VX: 1, VY: 0, Seed: Seed(0, SizeMedium),
	})

	for i := 0; i < 3; i++ {
		world.updateProjectiles()
	}

	if world.ProjectileCount() != 1 {
		t.Fatalf("projectile count = %d, want 1", world.ProjectileCount())
	}
	p := world.projectiles[0]
	if math.Abs(p.X-5.5) > 1e-9 || math.Abs(p.Y-5.5) > 1e-9 {
		t.Fatalf("position = (%f, %f), want (5.5, 5.5)", p.X, p.Y)
	}
	if p.Age != 3 {
		t.Fatalf("age = %d, want 3", p.Age)
	}
}

func TestProjectileAppliesGravity(t *testing.T) {
	cfg := quietConfig(20, 20)
	cfg.Params.ProjectileGravity = 0.5
	world := NewWithConfig(cfg)
	world.projectiles = append(world.projectiles, SeedProjectile{
		X: 5.5, Y: 2.5, Seed: Seed(0, SizeMedium),
	})

	world.updateProjectiles()
	world.updateProjectiles()

	p := world.projectiles[0]
	if p.Y <= 2.5 {
		t.Fatalf("gravity should pull the seed down, y = %f", p.Y)
	}
	if math.Abs(p.VY-1.0) > 1e-9 {
		t.Fatalf("vy = %f, want 1.0 after two gravity steps", p.VY)
	}
}

func TestProjectileRestsOnWater(t *testing.T) {
	world := quietWorld(20, 10)
	world.Tiles().Set(4, 5, Water(200))
	world.projectiles = append(world.projectiles, SeedProjectile{
		X: 3.5, Y: 5.5, VX: 1, VY: 0, Seed: Seed(0, SizeSmall),
	})

	world.updateProjectiles()

	if world.ProjectileCount() != 0 {
		t.Fatal("projectile should stop on water")
	}
	got := world.TileAt(4, 5)
	if got.Kind != KindSeed || got.Size != SizeSmall {
		t.Fatalf("water cell = %+v, want a small seed", got)
	}
}

func TestProjectileLeavingWorldIsLost(t *testing.T) {
	world := quietWorld(10, 10)
	world.projectiles = append(world.projectiles, SeedProjectile{
		X: 8.5, Y: 5.5, VX: 5, VY: 0, Seed: Seed(0, SizeMedium),
	})

	world.updateProjectiles()

	if world.ProjectileCount() != 0 {
		t.Fatal("projectile crossing the edge should be discarded")
	}
}

func TestProjectileBouncesOffSolidGround(t *testing.T) {
	world := quietWorld(20, 10)
	world.Tiles().Set(5, 6, Tile{Kind: KindDirt})
	world.projectiles = append(world.projectiles, SeedProjectile{
		X: 5.5, Y: 4.5, VX: 0, VY: 2, Seed: Seed(0, SizeMedium),
	})

	world.updateProjectiles()

	if world.ProjectileCount() != 1 {
		t.Fatalf("projectile count = %d, want 1 after bounce", world.ProjectileCount())
	}
	p := world.projectiles[0]
	if p.Bounce != 1 {
		t.Fatalf("bounce counter = %d, want 1", p.Bounce)
	}
	if p.VY >= 0 {
		t.Fatalf("vy = %f, want upward after bounce", p.VY)
	}
}

func TestLaunchSeedSpawnsProjectile(t *testing.T) {
	world := quietWorld(20, 20)
	world.launchSeed(10, 10, SizeSmall)

	if world.ProjectileCount() != 1 {
		t.Fatalf("projectile count = %d, want 1", world.ProjectileCount())
	}
	p := world.projectiles[0]
	if p.Seed.Kind != KindSeed || p.Seed.Size != SizeSmall {
		t.Fatalf("payload = %+v, want small seed", p.Seed)
	}
	if p.VY >= 0 {
		t.Fatalf("launch vy = %f, want upward bias", p.VY)
	}
}
