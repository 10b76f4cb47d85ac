package terrarium

import "testing"

func TestNutrientDiffusionConservesNutrients(t *testing.T) {
	cfg := quietConfig(6, 6)
	cfg.Params.NutrientDiffusionChance = 1
	world := NewWithConfig(cfg)

	// A dense block so colliding wander targets happen every pass.
	want := 0
	for y := 2; y <= 3; y++ {
		for x := 1; x <= 4; x++ {
			world.Tiles().Set(x, y, Tile{Kind: KindNutrient})
			want++
		}
	}

	for i := 0; i < 50; i++ {
		world.diffuseNutrients()
	}

	got := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if world.TileAt(x, y).Kind == KindNutrient {
				got++
			}
		}
	}
	if got != want {
		t.Fatalf("nutrient count = %d, want %d preserved with nothing to absorb them", got, want)
	}
}

func TestNutrientMergesIntoEnrichedSoil(t *testing.T) {
	cfg := quietConfig(6, 6)
	cfg.Params.NutrientDiffusionChance = 1
	world := NewWithConfig(cfg)

	world.Tiles().Set(3, 3, Tile{Kind: KindNutrient})
	for _, d := range orthogonal {
		world.Tiles().Set(3+d[0], 3+d[1], NutrientDirt(60))
	}

	world.diffuseNutrients()

	if world.TileAt(3, 3).Kind != KindEmpty {
		t.Fatal("nutrient boxed in by enriched soil should be absorbed")
	}
	total := uint8(0)
	enriched := 0
	for _, d := range orthogonal {
		n := world.TileAt(3+d[0], 3+d[1])
		if n.Kind != KindNutrientDirt {
			t.Fatalf("soil at offset %v = %+v, want enriched dirt", d, n)
		}
		if n.Amount > 60 {
			total = n.Amount
			enriched++
		}
	}
	if enriched != 1 || total != 100 {
		t.Fatalf("enriched cells = %d with amount %d, want one cell at 100", enriched, total)
	}
}
