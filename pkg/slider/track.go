package slider

import "math"

// Track describes the horizontal strip of pixels a slider's handles
// travel along: Width is the usable travel width and Inset the pixel
// position of fraction 0. Both are measured by the caller at layout
// time, so a Track is only good for the layout pass that produced it.
type Track struct {
	Width float64
	Inset float64
}

// Pixel returns the pixel position at fraction f of the track,
// clamping f to [0, 1] first.
func (tr Track) Pixel(f float64) float64 {
	return tr.Inset + clamp01(f)*tr.Width
}

// Fraction returns where the pixel position p sits along the track, as
// a fraction in [0, 1]. Positions outside the track clamp to the
// nearest end. Tracks narrower than one pixel keep the unit scale, so
// a track with no width maps every position to 0.
func (tr Track) Fraction(p float64) float64 {
	right := tr.Inset + tr.Width
	switch {
	case !(p > tr.Inset):
		p = tr.Inset
	case p > right:
		p = right
	}
	return clamp01((p - tr.Inset) / math.Max(tr.Width, 1))
}

// Axis maps slider values to pixel positions along a track and back.
// With Mirrored set, the value axis runs right to left (for
// right-to-left locales): the lower bound sits at the track's right
// end and the upper bound at its left end.
type Axis struct {
	Bounds   Bounds
	Track    Track
	Mirrored bool
}

// PositionOf returns the pixel position of the handle value v.
func (a Axis) PositionOf(v float64) float64 {
	f := a.Bounds.Fraction(v)
	if a.Mirrored {
		f = 1 - f
	}
	return a.Track.Pixel(f)
}

// ValueAt returns the handle value at pixel position p. A track with
// no usable width resolves every position to the lower bound, mirrored
// or not.
func (a Axis) ValueAt(p float64) float64 {
	if !(a.Track.Width > 0) {
		return a.Bounds.Lower
	}
	f := a.Track.Fraction(p)
	if a.Mirrored {
		f = 1 - f
	}
	return a.Bounds.At(f)
}
