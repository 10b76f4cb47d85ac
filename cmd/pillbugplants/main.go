//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/meltingscales/pillbugplants/internal/app"
	"github.com/meltingscales/pillbugplants/internal/core"
	"github.com/meltingscales/pillbugplants/internal/sims/terrarium"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim := buildSim(cfg)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("pillbugplants — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildSim(cfg *app.Config) core.Sim {
	if cfg.ConfigPath != "" {
		tc, err := terrarium.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("load config %q: %v", cfg.ConfigPath, err)
		}
		tc.Width = cfg.Width
		tc.Height = cfg.Height
		if cfg.Seed != 0 {
			tc.Seed = cfg.Seed
		}
		return terrarium.NewWithConfig(tc)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	return factory(cfg.FactoryOptions())
}
