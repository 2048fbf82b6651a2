package component

// Input stores the actions requested this frame.
type Input struct {
	JumpPressed  bool
	PausePressed bool
	PlayPressed  bool
}

func (in Input) Any() bool {
	return in.JumpPressed || in.PausePressed || in.PlayPressed
}

var InputComponent = NewComponent[Input]()
