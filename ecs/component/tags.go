package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// LevelTag marks the ground, floor and wall entities of one level.
type LevelTag struct {
	Index int
}

var LevelTagComponent = NewComponent[LevelTag]()
