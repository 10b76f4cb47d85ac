package terrarium

import "testing"

func TestJuvenileAlwaysExplores(t *testing.T) {
	world := quietWorld(12, 12)
	head := Organism(KindPillbugHead, 5, SizeMedium)
	world.Tiles().Set(6, 6, head)

	move := world.decideMovement(6, 6, head)
	if move.strategy != StrategyExplore {
		t.Fatalf("juvenile strategy = %v, want explore", move.strategy)
	}
}

func TestWaterBelowTriggersAvoid(t *testing.T) {
	world := quietWorld(12, 12)
	head := Organism(KindPillbugHead, 50, SizeMedium)
	world.Tiles().Set(6, 6, head)
	world.Tiles().Set(6, 7, Water(200))

	move := world.decideMovement(6, 6, head)
	if move.strategy != StrategyAvoid {
		t.Fatalf("strategy = %v, want avoid", move.strategy)
	}
	if move.dy != -1 {
		t.Fatalf("avoid direction dy = %d, want -1 (up)", move.dy)
	}
}

func TestLargerHeadNearbyTriggersFlight(t *testing.T) {
	world := quietWorld(12, 12)
	head := Organism(KindPillbugHead, 50, SizeSmall)
	world.Tiles().Set(6, 6, head)
	world.Tiles().Set(8, 6, Organism(KindPillbugHead, 50, SizeLarge))

	move := world.decideMovement(6, 6, head)
	if move.strategy != StrategyAvoid {
		t.Fatalf("strategy = %v, want avoid", move.strategy)
	}
	if move.dx != -1 {
		t.Fatalf("flight direction dx = %d, want -1 (away)", move.dx)
	}
}

func TestFoodInRangeTriggersSeek(t *testing.T) {
	world := quietWorld(12, 12)
	head := Organism(KindPillbugHead, 50, SizeMedium)
	world.Tiles().Set(5, 5, head)
	world.Tiles().Set(8, 5, Organism(KindPlantLeaf, 1, SizeMedium))

	move := world.decideMovement(5, 5, head)
	if move.strategy != StrategySeekFood {
		t.Fatalf("strategy = %v, want seek-food", move.strategy)
	}
	if move.dx != 1 || move.dy != 0 {
		t.Fatalf("seek direction = (%d,%d), want (1,0)", move.dx, move.dy)
	}
}

func TestStrategyMoveChancesOrdering(t *testing.T) {
	if StrategyAvoid.moveChance() <= StrategySeekFood.moveChance() {
		t.Fatal("fleeing must be more urgent than feeding")
	}
	if StrategyRest.moveChance() >= StrategyExplore.moveChance() {
		t.Fatal("rest must be the least active strategy")
	}
}

func TestClusterMovesAtomically(t *testing.T) {
	world := quietWorld(12, 12)
	size := SizeMedium
	world.Tiles().Set(3, 6, Organism(KindPillbugLegs, 10, size))
	world.Tiles().Set(4, 6, Organism(KindPillbugBody, 10, size))
	world.Tiles().Set(5, 6, Organism(KindPillbugHead, 10, size))

	next := world.tiles.Clone()
	touched := map[[2]int]bool{}
	world.moveCluster(5, 6, world.TileAt(5, 6), 1, 0, next, touched)

	if next.At(3, 6).Kind != KindEmpty {
		t.Fatal("tail origin should be vacated")
	}
	if next.At(4, 6).Kind != KindPillbugLegs {
		t.Fatalf("legs = %v at (4,6)", next.At(4, 6).Kind)
	}
	if next.At(5, 6).Kind != KindPillbugBody {
		t.Fatalf("body = %v at (5,6)", next.At(5, 6).Kind)
	}
	if next.At(6, 6).Kind != KindPillbugHead {
		t.Fatalf("head = %v at (6,6)", next.At(6, 6).Kind)
	}
}

func TestBlockedClusterStaysPut(t *testing.T) {
	world := quietWorld(12, 12)
	size := SizeMedium
	world.Tiles().Set(4, 6, Organism(KindPillbugBody, 10, size))
	world.Tiles().Set(5, 6, Organism(KindPillbugHead, 10, size))
	world.Tiles().Set(6, 6, Tile{Kind: KindDirt})

	next := world.tiles.Clone()
	touched := map[[2]int]bool{}
	world.moveCluster(5, 6, world.TileAt(5, 6), 1, 0, next, touched)

	if next.At(5, 6).Kind != KindPillbugHead || next.At(4, 6).Kind != KindPillbugBody {
		t.Fatal("a blocked cluster must not move at all")
	}
	if next.At(6, 6).Kind != KindDirt {
		t.Fatal("the obstacle must be untouched")
	}
}

func TestClusterGrazesNutrientOnTheWay(t *testing.T) {
	world := quietWorld(12, 12)
	head := Organism(KindPillbugHead, 50, SizeMedium)
	world.Tiles().Set(5, 6, head)
	world.Tiles().Set(6, 6, Tile{Kind: KindNutrient})

	next := world.tiles.Clone()
	touched := map[[2]int]bool{}
	world.moveCluster(5, 6, head, 1, 0, next, touched)

	moved := next.At(6, 6)
	if moved.Kind != KindPillbugHead {
		t.Fatalf("head = %v at (6,6), want moved onto the nutrient", moved.Kind)
	}
	if moved.Age != 45 {
		t.Fatalf("head age = %d, want 45 after grazing", moved.Age)
	}
}

func TestDifferentSizeSegmentsStayBehind(t *testing.T) {
	world := quietWorld(12, 12)
	world.Tiles().Set(4, 6, Organism(KindPillbugBody, 10, SizeLarge))
	world.Tiles().Set(5, 6, Organism(KindPillbugHead, 10, SizeMedium))

	next := world.tiles.Clone()
	touched := map[[2]int]bool{}
	world.moveCluster(5, 6, world.TileAt(5, 6), 1, 0, next, touched)

	if next.At(4, 6).Kind != KindPillbugBody {
		t.Fatal("a foreign-size segment must not be dragged along")
	}
	if next.At(6, 6).Kind != KindPillbugHead {
		t.Fatal("the medium head should still move on its own")
	}
}
