package slider

import (
	"math"
	"testing"

	"github.com/widgetry/rangeslider/pkg/errs"
	"github.com/widgetry/rangeslider/pkg/tt"
)

func TestResolveLower(t *testing.T) {
	c := Constraints{Bounds: Bounds{0, 10}, Step: 0.5, MinDistance: 2}
	tt.Test(t, tt.Fn("ResolveLower", c.ResolveLower).ArgsFmt("cur %v, proposed %v"), tt.Table{
		// Snaps to 5, then gives way to the separation cap at 4.
		Args(Interval{2, 6}, 5.1).Rets(Interval{4, 6}),
		Args(Interval{2, 6}, 1.1).Rets(Interval{1, 6}),
		// Proposals outside the bounds clamp first.
		Args(Interval{2, 6}, -7.0).Rets(Interval{0, 6}),
		Args(Interval{2, 6}, 12.0).Rets(Interval{4, 6}),
	})

	// Without a minimum separation the handles may touch but never cross.
	loose := Constraints{Bounds: Bounds{0, 10}}
	tt.Test(t, tt.Fn("ResolveLower", loose.ResolveLower).ArgsFmt("cur %v, proposed %v"), tt.Table{
		Args(Interval{2, 6}, 8.0).Rets(Interval{6, 6}),
		Args(Interval{2, 6}, 6.0).Rets(Interval{6, 6}),
	})

	// The snapping grid is anchored at the lower bound.
	anchored := Constraints{Bounds: Bounds{1, 10}, Step: 2}
	tt.Test(t, tt.Fn("ResolveLower", anchored.ResolveLower).ArgsFmt("cur %v, proposed %v"), tt.Table{
		Args(Interval{5, 9}, 2.4).Rets(Interval{3, 9}),
	})

	// A non-positive step disables snapping entirely.
	unsnapped := Constraints{Bounds: Bounds{0, 10}, Step: -1}
	tt.Test(t, tt.Fn("ResolveLower", unsnapped.ResolveLower).ArgsFmt("cur %v, proposed %v"), tt.Table{
		Args(Interval{5, 9}, 2.34).Rets(Interval{2.34, 9}),
	})
}

func TestResolveUpper(t *testing.T) {
	c := Constraints{Bounds: Bounds{0, 10}, Step: 0.5, MinDistance: 2}
	tt.Test(t, tt.Fn("ResolveUpper", c.ResolveUpper).ArgsFmt("cur %v, proposed %v"), tt.Table{
		// Snaps to 3.5, then yields to the separation floor at 4.
		Args(Interval{2, 6}, 3.3).Rets(Interval{2, 4}),
		Args(Interval{2, 6}, 9.1).Rets(Interval{2, 9}),
		Args(Interval{2, 6}, 99.0).Rets(Interval{2, 10}),
	})

	loose := Constraints{Bounds: Bounds{0, 10}}
	tt.Test(t, tt.Fn("ResolveUpper", loose.ResolveUpper).ArgsFmt("cur %v, proposed %v"), tt.Table{
		Args(Interval{2, 6}, 1.0).Rets(Interval{2, 2}),
	})
}

// When MinDistance exceeds the domain span, the moving handle gives
// way completely and pins to its own end of the bounds.
func TestResolveDegradesExcessiveMinDistance(t *testing.T) {
	c := Constraints{Bounds: Bounds{0, 10}, MinDistance: 100}
	tt.Test(t, tt.Fn("ResolveLower", c.ResolveLower).ArgsFmt("cur %v, proposed %v"), tt.Table{
		Args(Interval{0, 10}, 7.0).Rets(Interval{0, 10}),
	})
	tt.Test(t, tt.Fn("ResolveUpper", c.ResolveUpper).ArgsFmt("cur %v, proposed %v"), tt.Table{
		Args(Interval{0, 10}, 3.0).Rets(Interval{0, 10}),
	})
}

func TestNudge(t *testing.T) {
	c := Constraints{Bounds: Bounds{0, 10}, Step: 0.5, MinDistance: 2}
	tt.Test(t, tt.Fn("NudgeLower", c.NudgeLower).ArgsFmt("cur %v, delta %v"), tt.Table{
		Args(Interval{2, 6}, 0.25).Rets(Interval{2.5, 6}),
		Args(Interval{2, 6}, -5.0).Rets(Interval{0, 6}),
	})
	tt.Test(t, tt.Fn("NudgeUpper", c.NudgeUpper).ArgsFmt("cur %v, delta %v"), tt.Table{
		Args(Interval{2, 6}, -3.0).Rets(Interval{2, 4}),
		Args(Interval{2, 6}, 99.0).Rets(Interval{2, 10}),
	})
}

// Resolve and Nudge are pure routers; their results must be
// bit-for-bit identical to calling the handle-specific methods.
func TestDispatchEquivalence(t *testing.T) {
	c := Constraints{Bounds: Bounds{-3, 12}, Step: 0.7, MinDistance: 1.5}
	cur := Interval{0.7, 7.7}
	for _, proposed := range []float64{-10, -3, 0, 0.349, 3.15, 7.7, 12, 99} {
		if got, want := c.Resolve(Lower, cur, proposed), c.ResolveLower(cur, proposed); !sameBits(got, want) {
			t.Errorf("Resolve(Lower, %v, %v) = %v, ResolveLower = %v", cur, proposed, got, want)
		}
		if got, want := c.Resolve(Upper, cur, proposed), c.ResolveUpper(cur, proposed); !sameBits(got, want) {
			t.Errorf("Resolve(Upper, %v, %v) = %v, ResolveUpper = %v", cur, proposed, got, want)
		}
	}
	for _, delta := range []float64{-20, -0.7, 0, 0.01, 4.9, 50} {
		if got, want := c.Nudge(Lower, cur, delta), c.NudgeLower(cur, delta); !sameBits(got, want) {
			t.Errorf("Nudge(Lower, %v, %v) = %v, NudgeLower = %v", cur, delta, got, want)
		}
		if got, want := c.Nudge(Upper, cur, delta), c.NudgeUpper(cur, delta); !sameBits(got, want) {
			t.Errorf("Nudge(Upper, %v, %v) = %v, NudgeUpper = %v", cur, delta, got, want)
		}
		if got, want := c.NudgeLower(cur, delta), c.ResolveLower(cur, cur.Lower+delta); !sameBits(got, want) {
			t.Errorf("NudgeLower(%v, %v) = %v, want ResolveLower result %v", cur, delta, got, want)
		}
		if got, want := c.NudgeUpper(cur, delta), c.ResolveUpper(cur, cur.Upper+delta); !sameBits(got, want) {
			t.Errorf("NudgeUpper(%v, %v) = %v, want ResolveUpper result %v", cur, delta, got, want)
		}
	}
}

func sameBits(a, b Interval) bool {
	return math.Float64bits(a.Lower) == math.Float64bits(b.Lower) &&
		math.Float64bits(a.Upper) == math.Float64bits(b.Upper)
}

func TestConstraintsWith(t *testing.T) {
	base := Constraints{Bounds: Bounds{0, 10}, Step: 0.5, MinDistance: 2}
	got := base.WithBounds(Bounds{-1, 1}).WithStep(0.25).WithMinDistance(0.5)
	want := Constraints{Bounds: Bounds{-1, 1}, Step: 0.25, MinDistance: 0.5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if base != (Constraints{Bounds: Bounds{0, 10}, Step: 0.5, MinDistance: 2}) {
		t.Errorf("receiver was mutated: %v", base)
	}
}

func TestConstraintsValidate(t *testing.T) {
	tt.Test(t, tt.Fn("Validate", Constraints.Validate), tt.Table{
		Args(Constraints{Bounds{0, 10}, 0.5, 2}).Rets(nil),
		Args(Constraints{Bounds{0, 10}, 0, 0}).Rets(nil),
		// A zero-width domain is legal, as is a separation wider than
		// the domain.
		Args(Constraints{Bounds{3, 3}, 0, 0}).Rets(nil),
		Args(Constraints{Bounds{0, 10}, 0, 1e9}).Rets(nil),

		Args(Constraints{Bounds{5, 3}, 0, 0}).Rets(
			errs.BadValue{What: "slider bounds", Valid: "ordered", Actual: "[5, 3]"}),
		Args(Constraints{Bounds{math.NaN(), 3}, 0, 0}).Rets(
			errs.BadValue{What: "slider bounds", Valid: "finite", Actual: "[NaN, 3]"}),
		Args(Constraints{Bounds{0, math.Inf(1)}, 0, 0}).Rets(
			errs.BadValue{What: "slider bounds", Valid: "finite", Actual: "[0, +Inf]"}),
		Args(Constraints{Bounds{0, 10}, -0.5, 0}).Rets(
			errs.BadValue{What: "slider step", Valid: "non-negative", Actual: "-0.5"}),
		Args(Constraints{Bounds{0, 10}, math.NaN(), 0}).Rets(
			errs.BadValue{What: "slider step", Valid: "finite", Actual: "NaN"}),
		Args(Constraints{Bounds{0, 10}, 0, -2}).Rets(
			errs.BadValue{What: "minimum handle separation", Valid: "non-negative", Actual: "-2"}),
		Args(Constraints{Bounds{0, 10}, 0, math.Inf(1)}).Rets(
			errs.BadValue{What: "minimum handle separation", Valid: "finite", Actual: "+Inf"}),
	})
}
