package terrarium

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "64",
		"h":            "32",
		"seed":         "42",
		"growth_scale": "1.5",
		"plant_floor":  "5",
	})
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("dimensions = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Params.GrowthScale != 1.5 {
		t.Fatalf("growth scale = %f, want 1.5", cfg.Params.GrowthScale)
	}
	if cfg.Params.PlantFloor != 5 {
		t.Fatalf("plant floor = %d, want 5", cfg.Params.PlantFloor)
	}
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":            "-5",
		"growth_scale": "banana",
		"plant_floor":  "-1",
	})
	if cfg.Width != def.Width {
		t.Fatalf("negative width should keep default, got %d", cfg.Width)
	}
	if cfg.Params.GrowthScale != def.Params.GrowthScale {
		t.Fatalf("unparsable float should keep default, got %f", cfg.Params.GrowthScale)
	}
	if cfg.Params.PlantFloor != def.Params.PlantFloor {
		t.Fatalf("negative floor should keep default, got %d", cfg.Params.PlantFloor)
	}
}

func TestFromMapEnforcesYearTickFloor(t *testing.T) {
	cfg := FromMap(map[string]string{"year_ticks": "1"})
	if cfg.Params.YearTicks != 4 {
		t.Fatalf("year ticks = %d, want floor of 4", cfg.Params.YearTicks)
	}
}

func TestFromMapNilKeepsDefaults(t *testing.T) {
	cfg := FromMap(nil)
	if cfg != DefaultConfig() {
		t.Fatal("nil map must return the default config unchanged")
	}
}

func TestLoadConfigLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrarium.yaml")
	data := []byte("width: 80\nseed: 5\nparams:\n  rain_base_chance: 0.2\n  ground_rows: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 80 {
		t.Fatalf("width = %d, want 80", cfg.Width)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("unset height = %d, want default %d", cfg.Height, DefaultConfig().Height)
	}
	if cfg.Seed != 5 {
		t.Fatalf("seed = %d, want 5", cfg.Seed)
	}
	if cfg.Params.RainBaseChance != 0.2 {
		t.Fatalf("rain base chance = %f, want 0.2", cfg.Params.RainBaseChance)
	}
	if cfg.Params.GroundRows != 4 {
		t.Fatalf("ground rows = %d, want 4", cfg.Params.GroundRows)
	}
	if cfg.Params.GrowthScale != DefaultConfig().Params.GrowthScale {
		t.Fatal("untouched params must keep their defaults")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file must report an error")
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed YAML must report an error")
	}
}
