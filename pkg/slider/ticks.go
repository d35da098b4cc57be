package slider

import "math"

const (
	// maxTicks caps the slice Ticks returns, keeping a tiny step over a
	// huge domain from allocating without bound.
	maxTicks = 4096
	// tickTolerance absorbs rounding in span/step, so an upper bound
	// that falls on the grid is not lost to the last bit of a division.
	tickTolerance = 1e-9
)

// Ticks returns the ascending positions of the snapping grid inside b:
// the lower bound, then every multiple of step above it. The upper
// bound itself appears only when it falls on the grid (within a small
// relative tolerance). Returns nil when step is not positive, when the
// domain has no width, or when either is not finite. At most maxTicks
// positions are returned.
func Ticks(b Bounds, step float64) []float64 {
	span := b.Span()
	if !isFinite(span) || !(span > 0) || !isFinite(step) || !(step > 0) {
		return nil
	}
	n := math.Floor(span / step * (1 + tickTolerance))
	if !(n < maxTicks) {
		n = maxTicks - 1
	}
	ticks := make([]float64, 0, int(n)+1)
	for i := 0; i <= int(n); i++ {
		ticks = append(ticks, b.Clamp(b.Lower+float64(i)*step))
	}
	return ticks
}
