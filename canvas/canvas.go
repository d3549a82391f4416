package canvas

// Canvas is the playfield size in logical units, centred on the origin
type Canvas struct {
	Width  float64
	Height float64
}

func (c Canvas) HalfWidth() float64  { return c.Width / 2 }
func (c Canvas) HalfHeight() float64 { return c.Height / 2 }

// Viewport reports the current playfield size. ok is false while no
// viewport exists (headless before a size is known, or a closed screen).
type Viewport interface {
	Size() (c Canvas, ok bool)
}

// Fixed is a viewport that never changes size
type Fixed Canvas

func (f Fixed) Size() (Canvas, bool) {
	c := Canvas(f)
	return c, c.Width > 0 && c.Height > 0
}
