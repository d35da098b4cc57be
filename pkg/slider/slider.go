// Package slider implements the geometry and constraint core of a
// dual-handle range slider.
//
// The core converts between selection values and pixel positions on a
// horizontal track (optionally mirrored for right-to-left layouts),
// picks the handle a gesture grabs, and resolves proposed handle
// movements into intervals that respect the configured bounds,
// snapping step and minimum handle separation. Everything operates on
// small immutable values; the package keeps no state between calls and
// is safe for concurrent use.
//
// Rendering, animation and platform input handling are left to the
// caller. A typical widget measures its track each layout pass, maps
// pointer positions through an Axis, and feeds the results to a
// Constraints value to obtain the next selection.
package slider

import (
	"fmt"
	"math"
)

// Bounds is the closed numeric domain a slider selects from. A valid
// Bounds has Lower <= Upper; both ends must be finite.
type Bounds struct {
	Lower, Upper float64
}

// Span returns the width of the domain, Upper - Lower.
func (b Bounds) Span() float64 { return b.Upper - b.Lower }

// Clamp limits v to [Lower, Upper].
func (b Bounds) Clamp(v float64) float64 {
	switch {
	case v < b.Lower:
		return b.Lower
	case v > b.Upper:
		return b.Upper
	}
	return v
}

// Fraction returns where v sits in the domain, as a fraction in
// [0, 1]. The lower bound maps to 0 and the upper bound to 1; values
// outside the domain are clamped. A domain with no width maps every
// value to 0.
func (b Bounds) Fraction(v float64) float64 {
	span := b.Span()
	if !(span > 0) {
		return 0
	}
	return clamp01((v - b.Lower) / span)
}

// At returns the value at fraction f of the domain, clamping f to
// [0, 1] first. At(0) and At(1) return the bounds exactly.
func (b Bounds) At(f float64) float64 {
	f = clamp01(f)
	switch f {
	case 0:
		return b.Lower
	case 1:
		return b.Upper
	}
	return b.Clamp(b.Lower + f*b.Span())
}

// Snap quantizes v to the grid anchored at the lower bound with the
// given step, rounding half away from zero, and clamps the result to
// the domain. A step that is zero or negative leaves v unchanged.
//
// The grid is anchored at Lower rather than at zero, so a domain like
// [1, 10] with step 2 snaps to 1, 3, 5 and so on.
func (b Bounds) Snap(v, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return b.Clamp(b.Lower + math.Round((v-b.Lower)/step)*step)
}

// String implements the fmt.Stringer interface.
func (b Bounds) String() string {
	return fmt.Sprintf("[%v, %v]", b.Lower, b.Upper)
}

// Interval is a selection between the two handles of a slider. A valid
// Interval has Lower <= Upper, with both ends inside the slider's
// bounds; the resolver methods of Constraints keep it that way.
type Interval struct {
	Lower, Upper float64
}

// Size returns the distance between the two handles, Upper - Lower.
func (iv Interval) Size() float64 { return iv.Upper - iv.Lower }

// String implements the fmt.Stringer interface.
func (iv Interval) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Lower, iv.Upper)
}

// clamp01 limits f to [0, 1]. The first case also catches NaN, which
// can arise from dividing overflowed spans; the fallback is 0.
func clamp01(f float64) float64 {
	switch {
	case !(f > 0):
		return 0
	case f > 1:
		return 1
	}
	return f
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
