package slider

import (
	"fmt"

	"github.com/widgetry/rangeslider/pkg/errs"
)

// Constraints is the rule set a slider selection must satisfy: Bounds
// gives the selectable domain, Step the snapping grid (0 means no
// snapping) and MinDistance the smallest permitted distance between
// the two handles.
//
// Constraints is a value object. The With methods derive adjusted
// copies; Validate checks a value built from caller input before it is
// used. The resolver methods never reject: out-of-contract inputs are
// degraded per the rules documented on each method.
type Constraints struct {
	Bounds      Bounds
	Step        float64
	MinDistance float64
}

// ResolveLower returns the selection after moving the lower handle of
// cur toward proposed. The proposal is clamped into bounds, snapped to
// the step grid and kept at least MinDistance below the upper handle.
// When MinDistance cannot be honored inside the bounds the moving
// handle gives way; the upper handle never moves.
func (c Constraints) ResolveLower(cur Interval, proposed float64) Interval {
	v := c.Bounds.Snap(c.Bounds.Clamp(proposed), c.Step)
	if max := cur.Upper - c.MinDistance; v > max {
		v = max
	}
	return Interval{c.Bounds.Clamp(v), cur.Upper}
}

// ResolveUpper is ResolveLower's mirror image for the upper handle.
func (c Constraints) ResolveUpper(cur Interval, proposed float64) Interval {
	v := c.Bounds.Snap(c.Bounds.Clamp(proposed), c.Step)
	if min := cur.Lower + c.MinDistance; v < min {
		v = min
	}
	return Interval{cur.Lower, c.Bounds.Clamp(v)}
}

// Resolve routes proposed to ResolveLower or ResolveUpper, depending
// on which handle moves.
func (c Constraints) Resolve(h Handle, cur Interval, proposed float64) Interval {
	if h == Upper {
		return c.ResolveUpper(cur, proposed)
	}
	return c.ResolveLower(cur, proposed)
}

// NudgeLower moves the lower handle of cur by delta, going through the
// same resolution as a drag to cur.Lower + delta.
func (c Constraints) NudgeLower(cur Interval, delta float64) Interval {
	return c.ResolveLower(cur, cur.Lower+delta)
}

// NudgeUpper moves the upper handle of cur by delta.
func (c Constraints) NudgeUpper(cur Interval, delta float64) Interval {
	return c.ResolveUpper(cur, cur.Upper+delta)
}

// Nudge routes delta to NudgeLower or NudgeUpper, depending on which
// handle moves.
func (c Constraints) Nudge(h Handle, cur Interval, delta float64) Interval {
	if h == Upper {
		return c.NudgeUpper(cur, delta)
	}
	return c.NudgeLower(cur, delta)
}

// WithBounds returns a copy of c with the bounds replaced.
func (c Constraints) WithBounds(b Bounds) Constraints {
	c.Bounds = b
	return c
}

// WithStep returns a copy of c with the snapping step replaced.
func (c Constraints) WithStep(step float64) Constraints {
	c.Step = step
	return c
}

// WithMinDistance returns a copy of c with the minimum handle
// separation replaced.
func (c Constraints) WithMinDistance(d float64) Constraints {
	c.MinDistance = d
	return c
}

// Validate checks that c can serve as a slider's rule set: the bounds
// must be finite and ordered, the step and the minimum separation
// finite and non-negative. The zero step is valid and means no
// snapping. A MinDistance larger than the domain span is valid too;
// the resolver degrades it per the Resolve rules.
func (c Constraints) Validate() error {
	if !isFinite(c.Bounds.Lower) || !isFinite(c.Bounds.Upper) {
		return errs.BadValue{
			What: "slider bounds", Valid: "finite", Actual: c.Bounds.String()}
	}
	if c.Bounds.Lower > c.Bounds.Upper {
		return errs.BadValue{
			What: "slider bounds", Valid: "ordered", Actual: c.Bounds.String()}
	}
	if !isFinite(c.Step) {
		return errs.BadValue{
			What: "slider step", Valid: "finite", Actual: fmt.Sprint(c.Step)}
	}
	if c.Step < 0 {
		return errs.BadValue{
			What: "slider step", Valid: "non-negative", Actual: fmt.Sprint(c.Step)}
	}
	if !isFinite(c.MinDistance) {
		return errs.BadValue{
			What: "minimum handle separation", Valid: "finite",
			Actual: fmt.Sprint(c.MinDistance)}
	}
	if c.MinDistance < 0 {
		return errs.BadValue{
			What: "minimum handle separation", Valid: "non-negative",
			Actual: fmt.Sprint(c.MinDistance)}
	}
	return nil
}
