package component

// Camera scrolls the view by OffsetY, which follows the run's camera bound.
// Parallax scales the scroll applied to the background.
type Camera struct {
	OffsetY  float64
	Parallax float64
}

var CameraComponent = NewComponent[Camera]()
