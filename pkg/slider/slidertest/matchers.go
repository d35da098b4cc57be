// Package slidertest provides utilities for testing slider behavior:
// approximate matchers for the geometry's documented tolerance, and a
// runner for declarative YAML scenario fixtures.
package slidertest

import (
	"math"

	"github.com/widgetry/rangeslider/pkg/slider"
	"github.com/widgetry/rangeslider/pkg/tt"
)

// Tolerance is the relative tolerance within which Approx and
// ApproxInterval match, with a floor of 1 on the reference magnitude.
const Tolerance = 1e-9

// Approx matches a float64 within Tolerance of Want. NaN matches
// nothing, including itself; infinities match only exactly.
type Approx struct{ Want float64 }

// Match implements the tt.Matcher interface.
func (a Approx) Match(ret tt.RetValue) bool {
	got, ok := ret.(float64)
	return ok && approxEq(got, a.Want)
}

// ApproxInterval matches a slider.Interval whose ends are both within
// Tolerance of Want's.
type ApproxInterval struct{ Want slider.Interval }

// Match implements the tt.Matcher interface.
func (a ApproxInterval) Match(ret tt.RetValue) bool {
	got, ok := ret.(slider.Interval)
	return ok && approxEq(got.Lower, a.Want.Lower) && approxEq(got.Upper, a.Want.Upper)
}

func approxEq(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= Tolerance*math.Max(math.Abs(a), math.Max(math.Abs(b), 1))
}
