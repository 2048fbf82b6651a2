package component

// Transform is the centre of an entity in world space. Width and Height are
// the axis-aligned extent used for drawing.
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (t Transform) Left() float64 { return t.X - t.Width/2 }
func (t Transform) Top() float64  { return t.Y - t.Height/2 }

var TransformComponent = NewComponent[Transform]()
