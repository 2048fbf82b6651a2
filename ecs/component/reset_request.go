package component

// ResetRequest asks the persistence system to rebuild the level stack and
// start a new run.
type ResetRequest struct {
	Reason string
}

var ResetRequestComponent = NewComponent[ResetRequest]()
