package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/meltingscales/pillbugplants/internal/core"
	"github.com/meltingscales/pillbugplants/internal/sims/terrarium"

	"github.com/gdamore/tcell/v2"
)

func main() {
	width := flag.Int("w", 120, "grid width in tiles")
	height := flag.Int("h", 48, "grid height in tiles")
	seed := flag.Int64("seed", 0, "seed for simulation reset (0 uses the config seed)")
	tps := flag.Int("tps", 10, "ticks per second")
	configPath := flag.String("config", "", "optional YAML tuning file")
	flag.Parse()

	cfg := terrarium.DefaultConfig()
	if *configPath != "" {
		loaded, err := terrarium.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config %q: %v", *configPath, err)
		}
		cfg = loaded
	}
	cfg.Width = *width
	cfg.Height = *height

	world := terrarium.NewWithConfig(cfg)
	world.Reset(*seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	timer := core.NewFixedStep(*tps)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	paused := false
	stepOnce := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					stepOnce = true
				case ev.Rune() == 'r':
					world.Reset(*seed)
				case ev.Rune() == 's':
					world.Reset(time.Now().UnixNano())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if timer.ShouldStep() && (!paused || stepOnce) {
				world.Step()
				stepOnce = false
			}
			draw(screen, world)
		}
	}
}

func draw(screen tcell.Screen, world *terrarium.World) {
	size := world.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			tile := world.TileAt(x, y)
			c := tile.Color()
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
				Background(tcell.ColorBlack)
			screen.SetContent(x, y, tile.Glyph(), nil, style)
		}
	}

	drawStatus(screen, world, size.H)
	screen.Show()
}

func drawStatus(screen tcell.Screen, world *terrarium.World, row int) {
	phase := "night"
	if world.IsDay() {
		phase = "day"
	}
	dir, str := world.Wind()
	stats := world.Stats()
	status := fmt.Sprintf(
		"tick %d  %s  %s  rain %.2f  temp %.2f  wind %.2f@%.0f  plants %d  bugs %d  [space] pause  [n] step  [r/s] reset  [q] quit",
		world.Tick(), world.CurrentSeason(), phase, world.RainIntensity(),
		world.Temperature(), str, dir*180/math.Pi,
		stats.TotalPlants, stats.TotalPillbugs,
	)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range status {
		screen.SetContent(i, row, r, nil, style)
	}
}
