package slidertest

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/widgetry/rangeslider/pkg/errs"
	"github.com/widgetry/rangeslider/pkg/slider"
)

// scenario is one entry of a YAML scenario file: a constraint set, an
// optional axis, one operation and its wanted result. Interval-valued
// operations want two numbers, scalar ones a single number.
type scenario struct {
	Name        string    `yaml:"name"`
	Bounds      []float64 `yaml:"bounds"`
	Step        float64   `yaml:"step"`
	MinDistance float64   `yaml:"minDistance"`
	Current     []float64 `yaml:"current"`
	Track       struct {
		Width float64 `yaml:"width"`
		Inset float64 `yaml:"inset"`
	} `yaml:"track"`
	Mirrored bool      `yaml:"mirrored"`
	Op       string    `yaml:"op"`
	Proposed float64   `yaml:"proposed"`
	Delta    float64   `yaml:"delta"`
	Pixel    float64   `yaml:"pixel"`
	Value    float64   `yaml:"value"`
	Want     []float64 `yaml:"want"`
}

// Run loads the YAML scenario file fname and runs every scenario in it
// as a subtest.
func Run(t *testing.T, fname string) {
	raw, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	var scenarios []scenario
	if err := yaml.Unmarshal(raw, &scenarios); err != nil {
		t.Fatal(err)
	}
	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) { runScenario(t, sc) })
	}
}

func runScenario(t *testing.T, sc scenario) {
	lo, hi := pair(t, "bounds field", sc.Bounds)
	c := slider.Constraints{
		Bounds:      slider.Bounds{Lower: lo, Upper: hi},
		Step:        sc.Step,
		MinDistance: sc.MinDistance,
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	axis := slider.Axis{
		Bounds:   c.Bounds,
		Track:    slider.Track{Width: sc.Track.Width, Inset: sc.Track.Inset},
		Mirrored: sc.Mirrored,
	}
	switch sc.Op {
	case "resolve-lower":
		checkInterval(t, sc, c.ResolveLower(current(t, sc), sc.Proposed))
	case "resolve-upper":
		checkInterval(t, sc, c.ResolveUpper(current(t, sc), sc.Proposed))
	case "nudge-lower":
		checkInterval(t, sc, c.NudgeLower(current(t, sc), sc.Delta))
	case "nudge-upper":
		checkInterval(t, sc, c.NudgeUpper(current(t, sc), sc.Delta))
	case "position-of":
		checkValue(t, sc, axis.PositionOf(sc.Value))
	case "value-at":
		checkValue(t, sc, axis.ValueAt(sc.Pixel))
	case "snap":
		checkValue(t, sc, c.Bounds.Snap(sc.Value, c.Step))
	default:
		t.Fatal(errs.BadValue{
			What: "op field", Valid: "a supported operation", Actual: sc.Op})
	}
}

func current(t *testing.T, sc scenario) slider.Interval {
	lo, hi := pair(t, "current field", sc.Current)
	return slider.Interval{Lower: lo, Upper: hi}
}

func pair(t *testing.T, what string, fs []float64) (float64, float64) {
	t.Helper()
	if len(fs) != 2 {
		t.Fatal(errs.ArityMismatch{
			What: what, ValidLow: 2, ValidHigh: 2, Actual: len(fs)})
	}
	return fs[0], fs[1]
}

func checkInterval(t *testing.T, sc scenario, got slider.Interval) {
	t.Helper()
	lo, hi := pair(t, "want field", sc.Want)
	want := slider.Interval{Lower: lo, Upper: hi}
	if !(ApproxInterval{want}).Match(got) {
		t.Errorf("%s returns (-Wanted +Actual):\n%s", sc.Op, cmp.Diff(want, got))
	}
}

func checkValue(t *testing.T, sc scenario, got float64) {
	t.Helper()
	if len(sc.Want) != 1 {
		t.Fatal(errs.ArityMismatch{
			What: "want field", ValidLow: 1, ValidHigh: 1, Actual: len(sc.Want)})
	}
	if want := sc.Want[0]; !(Approx{want}).Match(got) {
		t.Errorf("%s returns %v, want %v (within relative %v)", sc.Op, got, want, Tolerance)
	}
}
