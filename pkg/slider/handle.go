package slider

import "math"

// Handle identifies one end of the selection. A gesture picks its
// handle once, when it starts; the choice stays fixed until the
// gesture ends, even if the pointer later moves past the other handle.
type Handle int

// The two handles of a dual-handle slider.
const (
	Lower Handle = iota
	Upper
)

func (h Handle) String() string {
	if h == Upper {
		return "upper"
	}
	return "lower"
}

// Nearest returns the handle whose pixel position is closer to the
// position startX where a gesture started. An exact tie goes to the
// lower handle.
func Nearest(startX, lowerX, upperX float64) Handle {
	if math.Abs(startX-lowerX) <= math.Abs(startX-upperX) {
		return Lower
	}
	return Upper
}
