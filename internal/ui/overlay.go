//go:build ebiten

package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/meltingscales/pillbugplants/internal/core"
	"github.com/meltingscales/pillbugplants/internal/sims/terrarium"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type environmentReporter interface {
	Tick() int
	IsDay() bool
	RainIntensity() float64
	Temperature() float64
	Humidity() float64
	Wind() (direction, strength float64)
}

type statsReporter interface {
	Stats() terrarium.EcosystemStats
}

// Overlay draws a textual status panel over the simulation view and lets the
// user nudge tunable parameters from the keyboard.
type Overlay struct {
	sim     core.Sim
	visible bool

	controls []core.ParameterControl
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		o.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		o.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		o.floatSetter = setter
	}
	return o
}

// Update handles overlay key bindings: Tab toggles visibility, Up/Down select
// a control, Left/Right adjust it.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
	if !o.visible || len(o.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		o.selected = (o.selected + 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		o.selected = (o.selected + len(o.controls) - 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		o.adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		o.adjust(-1)
	}
}

func (o *Overlay) adjust(direction float64) {
	ctrl := o.controls[o.selected]
	value := o.currentValue(ctrl.Key)
	value += ctrl.Step * direction
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if o.intSetter != nil {
			o.intSetter.SetIntParameter(ctrl.Key, int(math.Round(value)))
		}
	case core.ParamTypeFloat:
		if o.floatSetter != nil {
			o.floatSetter.SetFloatParameter(ctrl.Key, value)
		}
	}
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

func (o *Overlay) currentValue(key string) float64 {
	provider, ok := o.sim.(parameterProvider)
	if !ok {
		return 0
	}
	for _, g := range provider.Parameters().Groups {
		for _, p := range g.Params {
			if p.Key != key {
				continue
			}
			var v float64
			fmt.Sscanf(p.Value, "%g", &v)
			return v
		}
	}
	return 0
}

// Draw paints the status text in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible {
		return
	}

	var b strings.Builder
	if env, ok := o.sim.(environmentReporter); ok {
		phase := "night"
		if env.IsDay() {
			phase = "day"
		}
		dir, str := env.Wind()
		fmt.Fprintf(&b, "tick %d  %s  rain %.2f\n", env.Tick(), phase, env.RainIntensity())
		fmt.Fprintf(&b, "temp %.2f  humidity %.2f  wind %.0f° %.2f\n",
			env.Temperature(), env.Humidity(), dir*180/math.Pi, str)
	}
	if stats, ok := o.sim.(statsReporter); ok {
		v := stats.Stats()
		fmt.Fprintf(&b, "plants %d  bugs %d  water %d  nutrients %d  health %.2f\n",
			v.TotalPlants, v.TotalPillbugs, v.WaterCoverage, v.NutrientCount, v.PlantHealthRatio)
	}
	for i, ctrl := range o.controls {
		marker := "  "
		if i == o.selected {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s = %.3g\n", marker, ctrl.Label, o.currentValue(ctrl.Key))
	}

	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)
}
