package terrarium

import "testing"

func TestCalmWindLeavesParticlesAlone(t *testing.T) {
	cfg := quietConfig(12, 12)
	cfg.Params.WindDispersalBase = 1
	world := NewWithConfig(cfg)
	world.windStrength = 0.1 // below the minimum
	world.Tiles().Set(5, 5, Seed(0, SizeSmall))

	world.applyWindDispersal()

	if world.TileAt(5, 5).Kind != KindSeed {
		t.Fatal("seed must not move below the wind threshold")
	}
}

func TestStrongWindRelocatesSeed(t *testing.T) {
	cfg := quietConfig(16, 16)
	cfg.Params.WindDispersalBase = 1
	world := NewWithConfig(cfg)
	world.windStrength = 1
	world.windDirection = 0 // due east

	world.Tiles().Set(5, 8, Seed(0, SizeSmall))

	world.applyWindDispersal()

	if world.TileAt(5, 8).Kind == KindSeed {
		t.Fatal("small seed in full wind must be blown away")
	}
	seeds := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if world.TileAt(x, y).Kind == KindSeed {
				seeds++
				if x <= 5 {
					t.Fatalf("seed at (%d,%d) moved against an easterly wind", x, y)
				}
			}
		}
	}
	if seeds != 1 {
		t.Fatalf("seed count = %d, want exactly 1", seeds)
	}
}

func TestWindReadsOnlyPreStageState(t *testing.T) {
	cfg := quietConfig(12, 3)
	cfg.Params.WindDispersalBase = 1
	world := NewWithConfig(cfg)
	world.windStrength = 1
	world.windDirection = 0 // due east

	// Solid field with two spores and a pocket of open cells downwind of the
	// first. The first spore always leaves (5,0); the second can reach that
	// cell with jitter, but it was occupied when the pass began, so the pass
	// must not blow anything into it.
	for y := 0; y < 3; y++ {
		for x := 0; x < 12; x++ {
			world.Tiles().Set(x, y, Tile{Kind: KindDirt})
		}
	}
	world.Tiles().Set(7, 0, Tile{})
	world.Tiles().Set(8, 0, Tile{})
	world.Tiles().Set(7, 1, Tile{})
	world.Tiles().Set(8, 1, Tile{})
	world.Tiles().Set(5, 0, Spore(3))
	world.Tiles().Set(2, 1, Spore(7))

	world.applyWindDispersal()

	if got := world.TileAt(2, 1); got.Kind != KindSpore || got.Age != 7 {
		t.Fatalf("boxed-in spore = %+v, want it unmoved at (2,1)", got)
	}
	if got := world.TileAt(5, 0); got.Kind != KindEmpty {
		t.Fatalf("tile at (5,0) = %+v, want the vacated cell left empty", got)
	}
}

func TestHeavyTilesIgnoreWind(t *testing.T) {
	cfg := quietConfig(12, 12)
	cfg.Params.WindDispersalBase = 1
	world := NewWithConfig(cfg)
	world.windStrength = 1

	world.Tiles().Set(5, 5, Tile{Kind: KindDirt})
	world.Tiles().Set(6, 5, Water(200))

	world.applyWindDispersal()

	if world.TileAt(5, 5).Kind != KindDirt {
		t.Fatal("dirt must never be wind-dispersed")
	}
	if got := world.TileAt(6, 5); !got.IsWater() || got.Amount != 200 {
		t.Fatal("deep water must never be wind-dispersed")
	}
}

func TestWindSusceptibilityOrdering(t *testing.T) {
	small := windSusceptibility(Seed(0, SizeSmall))
	large := windSusceptibility(Seed(0, SizeLarge))
	if small <= large {
		t.Fatalf("small seeds must drift more than large ones: %f vs %f", small, large)
	}
	if got := windSusceptibility(Spore(0)); got != 1.0 {
		t.Fatalf("spore susceptibility = %f, want 1.0", got)
	}
	if got := windSusceptibility(Tile{Kind: KindDirt}); got != 0 {
		t.Fatalf("dirt susceptibility = %f, want 0", got)
	}
}
