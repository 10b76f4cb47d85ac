package terrarium

import "testing"

func TestWaterFallsToBottom(t *testing.T) {
	world := quietWorld(5, 10)
	world.Tiles().Set(2, 0, Water(100))

	for i := 0; i < 10; i++ {
		world.updateTerrain()
	}

	total := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			tile := world.TileAt(x, y)
			if !tile.IsWater() {
				continue
			}
			if y != 9 {
				t.Fatalf("water still at (%d,%d) above the bottom row", x, y)
			}
			total += int(tile.Amount)
		}
	}
	if total == 0 {
		t.Fatal("water disappeared with absorption and evaporation disabled")
	}
}

func TestSandFallsAndSettles(t *testing.T) {
	world := quietWorld(5, 10)
	world.Tiles().Set(2, 0, Tile{Kind: KindSand})

	for i := 0; i < 12; i++ {
		world.updateTerrain()
	}

	found := false
	for x := 0; x < 5; x++ {
		if world.TileAt(x, 9).Kind == KindSand {
			found = true
		}
	}
	if !found {
		t.Fatal("sand did not reach the bottom row")
	}
}

func TestSandOnFullGroundIsStable(t *testing.T) {
	world := quietWorld(7, 10)
	for x := 0; x < 7; x++ {
		world.Tiles().Set(x, 9, Tile{Kind: KindDirt})
	}
	world.Tiles().Set(3, 8, Tile{Kind: KindSand})

	for i := 0; i < 100; i++ {
		world.updateTerrain()
	}

	if world.TileAt(3, 8).Kind != KindSand {
		t.Fatal("sand resting on solid ground should not move")
	}
	for x := 0; x < 7; x++ {
		if world.TileAt(x, 9).Kind != KindDirt {
			t.Fatalf("ground at (%d,9) changed", x)
		}
	}
}

func TestSandSlidesIntoDiagonalGap(t *testing.T) {
	world := quietWorld(7, 10)
	for x := 0; x < 7; x++ {
		world.Tiles().Set(x, 9, Tile{Kind: KindDirt})
	}
	// A sand column two high: the upper grain has dirt below-left and
	// below-right free once the lower grain is pinned.
	world.Tiles().Set(3, 8, Tile{Kind: KindSand})
	world.Tiles().Set(3, 7, Tile{Kind: KindSand})

	for i := 0; i < 50; i++ {
		world.updateTerrain()
	}

	grains := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 7; x++ {
			if world.TileAt(x, y).Kind == KindSand {
				grains++
				if y < 8 {
					t.Fatalf("sand at (%d,%d) should have slid down", x, y)
				}
			}
		}
	}
	if grains != 2 {
		t.Fatalf("expected 2 sand grains, found %d", grains)
	}
}

func TestShallowWaterEvaporatesEntirely(t *testing.T) {
	cfg := quietConfig(5, 5)
	cfg.Params.EvaporationScale = 100
	world := NewWithConfig(cfg)
	world.Tiles().Set(2, 4, Water(20))

	world.updateTerrain()

	if world.TileAt(2, 4).Kind != KindEmpty {
		t.Fatal("shallow water should evaporate in a single pass at maximum scale")
	}
}

func TestWaterSoaksAndEnrichesSoil(t *testing.T) {
	cfg := quietConfig(5, 8)
	cfg.Params.AbsorptionChance = 1
	cfg.Params.SoilEnrichChance = 1
	world := NewWithConfig(cfg)
	world.Tiles().Set(2, 5, Tile{Kind: KindDirt})
	world.Tiles().Set(2, 4, Water(25))

	world.updateTerrain()

	if world.TileAt(2, 4).Kind != KindEmpty {
		t.Fatalf("shallow water should be fully absorbed, got %v", world.TileAt(2, 4).Kind)
	}
	soil := world.TileAt(2, 5)
	if soil.Kind != KindNutrientDirt {
		t.Fatalf("soil should be enriched to nutrient dirt, got %v", soil.Kind)
	}
	if soil.Amount != 100 {
		t.Fatalf("fresh nutrient dirt level = %d, want 100", soil.Amount)
	}
}

func TestDeepWaterGainsFallMomentum(t *testing.T) {
	world := quietWorld(3, 4)
	world.Tiles().Set(1, 0, Water(100))

	world.updateTerrain()

	below := world.TileAt(1, 1)
	if !below.IsWater() {
		t.Fatal("deep water should fall one row")
	}
	if below.Amount != 110 {
		t.Fatalf("fall depth = %d, want 110", below.Amount)
	}
}

func TestWaterPressureEqualizesColumns(t *testing.T) {
	world := quietWorld(3, 4)
	// Dirt walls pin the column so only the vertical exchange can act.
	for _, y := range [2]int{2, 3} {
		world.Tiles().Set(0, y, Tile{Kind: KindDirt})
		world.Tiles().Set(2, y, Tile{Kind: KindDirt})
	}
	world.Tiles().Set(1, 2, Water(200))
	world.Tiles().Set(1, 3, Water(100))

	world.updateTerrain()

	top := world.TileAt(1, 2)
	bottom := world.TileAt(1, 3)
	if !top.IsWater() || !bottom.IsWater() {
		t.Fatal("both cells should stay water")
	}
	if int(top.Amount)+int(bottom.Amount) != 300 {
		t.Fatalf("pressure blending lost water: %d + %d", top.Amount, bottom.Amount)
	}
	if top.Amount >= 200 {
		t.Fatalf("top depth did not transfer downward: %d", top.Amount)
	}
}
