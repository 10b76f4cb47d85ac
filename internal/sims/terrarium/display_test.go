package terrarium

import (
	"strings"
	"testing"
)

func TestGlyphsDistinguishKindsAndSizes(t *testing.T) {
	cases := []struct {
		tile Tile
		want rune
	}{
		{Tile{Kind: KindDirt}, '#'},
		{Tile{Kind: KindSand}, '.'},
		{Water(20), '·'},
		{Water(100), '~'},
		{Water(255), '█'},
		{Organism(KindPlantStem, 0, SizeSmall), 'i'},
		{Organism(KindPlantStem, 0, SizeMedium), '|'},
		{Organism(KindPlantStem, 0, SizeLarge), '║'},
		{Organism(KindPillbugHead, 0, SizeMedium), '@'},
		{Tile{Kind: KindNutrient}, '+'},
		{Spore(0), '∘'},
		{Tile{}, ' '},
	}
	for _, c := range cases {
		if got := c.tile.Glyph(); got != c.want {
			t.Fatalf("glyph for %+v = %q, want %q", c.tile, got, c.want)
		}
	}
}

func TestPaletteCoversAllIndices(t *testing.T) {
	world := quietWorld(4, 4)
	palette := world.Palette()
	if len(palette) != int(kindCount)+4 {
		t.Fatalf("palette has %d entries, want %d", len(palette), int(kindCount)+4)
	}
	for k := Kind(1); k < kindCount; k++ {
		if palette[k].A != 255 {
			t.Fatalf("palette entry for kind %d must be opaque", k)
		}
	}
}

func TestDisplayIndexSplitsWaterTiers(t *testing.T) {
	if displayIndex(Tile{Kind: KindDirt}) != uint8(KindDirt) {
		t.Fatal("non-water tiles map to their kind")
	}
	tiers := []struct {
		depth uint8
		want  uint8
	}{
		{20, waterTierBase},
		{100, waterTierBase + 1},
		{180, waterTierBase + 2},
		{255, waterTierBase + 3},
	}
	for _, c := range tiers {
		if got := displayIndex(Water(c.depth)); got != c.want {
			t.Fatalf("water depth %d maps to %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestRebuildDisplayTracksGrid(t *testing.T) {
	world := quietWorld(6, 6)
	world.Tiles().Set(2, 3, Water(200))
	world.Tiles().Set(4, 1, Tile{Kind: KindDirt})
	world.rebuildDisplay()

	cells := world.Cells()
	if cells[world.tiles.Index(2, 3)] != waterTierBase+2 {
		t.Fatal("display buffer missed the water tier")
	}
	if cells[world.tiles.Index(4, 1)] != uint8(KindDirt) {
		t.Fatal("display buffer missed the dirt tile")
	}
}

func TestStringRendersGridAndSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 10
	world := NewWithConfig(cfg)
	world.Reset(0)

	out := world.String()
	lines := strings.Split(out, "\n")
	if len(lines) < 10 {
		t.Fatalf("rendered output has %d lines, want at least the grid rows", len(lines))
	}
	for i := 0; i < 10; i++ {
		if n := len([]rune(lines[i])); n != 16 {
			t.Fatalf("grid row %d has %d runes, want 16", i, n)
		}
	}
	for _, label := range []string{"Tick:", "Season:", "Wind:", "Plants:"} {
		if !strings.Contains(out, label) {
			t.Fatalf("summary block missing %q", label)
		}
	}
}

func TestOrganismColorsFadeWithAge(t *testing.T) {
	young := Organism(KindPlantLeaf, 0, SizeMedium).Color()
	old := Organism(KindPlantLeaf, 90, SizeMedium).Color()
	if old.G >= young.G {
		t.Fatalf("leaf green should fade with age: young %d, old %d", young.G, old.G)
	}
}
