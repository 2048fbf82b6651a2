package component

import "github.com/milk9111/climber/climb"

// Session holds the running climb and the numbers shown on the HUD.
type Session struct {
	State *climb.State
	Seed  int64
	Best  int
	Runs  int
}

var SessionComponent = NewComponent[Session]()
