// Package intslider adapts the slider constraint core to integer
// domains.
//
// Bounds, selections, steps and separations are ints; every operation
// delegates to the float64 core and rounds the moved handle back to
// the nearest integer. With an integer rule set the core only ever
// produces integral values, so the rounding merely undoes the float64
// conversion; domains wider than 2^53 lose that exactness and are not
// supported. Pixel geometry stays in the core: build a slider.Axis
// from Bounds.Float for it.
package intslider

import (
	"math"

	"github.com/widgetry/rangeslider/pkg/slider"
)

// Bounds is the closed integer domain a slider selects from.
type Bounds struct {
	Lower, Upper int
}

// Float returns the float64 view of b.
func (b Bounds) Float() slider.Bounds {
	return slider.Bounds{Lower: float64(b.Lower), Upper: float64(b.Upper)}
}

// Interval is a selection between the two handles of a slider.
type Interval struct {
	Lower, Upper int
}

// Size returns the distance between the two handles, Upper - Lower.
func (iv Interval) Size() int { return iv.Upper - iv.Lower }

// Float returns the float64 view of iv.
func (iv Interval) Float() slider.Interval {
	return slider.Interval{Lower: float64(iv.Lower), Upper: float64(iv.Upper)}
}

// Constraints is the integer rule set, mirroring slider.Constraints:
// Step 0 means no snapping, MinDistance the smallest permitted
// distance between the handles.
type Constraints struct {
	Bounds      Bounds
	Step        int
	MinDistance int
}

// Float returns the float64 view of c.
func (c Constraints) Float() slider.Constraints {
	return slider.Constraints{
		Bounds:      c.Bounds.Float(),
		Step:        float64(c.Step),
		MinDistance: float64(c.MinDistance),
	}
}

// ResolveLower returns the selection after moving the lower handle of
// cur toward proposed, under the same rules as
// slider.Constraints.ResolveLower.
func (c Constraints) ResolveLower(cur Interval, proposed int) Interval {
	res := c.Float().ResolveLower(cur.Float(), float64(proposed))
	return Interval{c.fromFloat(res.Lower), cur.Upper}
}

// ResolveUpper is ResolveLower's mirror image for the upper handle.
func (c Constraints) ResolveUpper(cur Interval, proposed int) Interval {
	res := c.Float().ResolveUpper(cur.Float(), float64(proposed))
	return Interval{cur.Lower, c.fromFloat(res.Upper)}
}

// Resolve routes proposed to ResolveLower or ResolveUpper, depending
// on which handle moves.
func (c Constraints) Resolve(h slider.Handle, cur Interval, proposed int) Interval {
	if h == slider.Upper {
		return c.ResolveUpper(cur, proposed)
	}
	return c.ResolveLower(cur, proposed)
}

// NudgeLower moves the lower handle of cur by delta.
func (c Constraints) NudgeLower(cur Interval, delta int) Interval {
	return c.ResolveLower(cur, cur.Lower+delta)
}

// NudgeUpper moves the upper handle of cur by delta.
func (c Constraints) NudgeUpper(cur Interval, delta int) Interval {
	return c.ResolveUpper(cur, cur.Upper+delta)
}

// Nudge routes delta to NudgeLower or NudgeUpper, depending on which
// handle moves.
func (c Constraints) Nudge(h slider.Handle, cur Interval, delta int) Interval {
	if h == slider.Upper {
		return c.NudgeUpper(cur, delta)
	}
	return c.NudgeLower(cur, delta)
}

// Validate checks c under the same rules as
// slider.Constraints.Validate.
func (c Constraints) Validate() error {
	return c.Float().Validate()
}

// fromFloat converts a core result back to the integer domain. The
// rounding is a no-op for domains within 2^53; the clamp guards the
// int conversion at the domain's edges.
func (c Constraints) fromFloat(v float64) int {
	n := int(math.Round(v))
	switch {
	case n < c.Bounds.Lower:
		return c.Bounds.Lower
	case n > c.Bounds.Upper:
		return c.Bounds.Upper
	}
	return n
}
