package slider

import "github.com/widgetry/rangeslider/pkg/logutil"

var logger = logutil.GetLogger("[slider] ")

// Drag is one active drag gesture. It records the handle grabbed when
// the gesture started and routes every pointer position through the
// axis and constraints it was created with.
//
// The caller owns the Drag for the duration of the gesture: create one
// with BeginDrag when the pointer goes down, call Move for each
// pointer position, and drop the Drag when the pointer is released.
// Cancelling a gesture is simply not calling Move again.
type Drag struct {
	constraints Constraints
	axis        Axis
	active      Handle
}

// BeginDrag starts a drag gesture at pixel position startX over the
// selection cur. The handle whose pixel position is nearer to startX
// is grabbed; an exact tie grabs the lower handle. The choice is made
// here, once, and holds for the whole gesture.
func BeginDrag(c Constraints, axis Axis, cur Interval, startX float64) *Drag {
	h := Nearest(startX, axis.PositionOf(cur.Lower), axis.PositionOf(cur.Upper))
	logger.Printf("drag begins at %v, grabs %v handle", startX, h)
	return &Drag{constraints: c, axis: axis, active: h}
}

// Move resolves the pointer position x into a new selection. Only the
// handle grabbed at gesture start moves; the other stays put even when
// the pointer crosses it.
func (d *Drag) Move(cur Interval, x float64) Interval {
	return d.constraints.Resolve(d.active, cur, d.axis.ValueAt(x))
}

// Active returns the handle grabbed at gesture start.
func (d *Drag) Active() Handle {
	return d.active
}
