package component

// FrameInput is the input snapshot sampled once per rendered frame.
type FrameInput struct {
	// X is the horizontal axis, -1 for left and +1 for right. Wider values
	// are passed through untouched.
	X float64
	// Y is the vertical axis. Negative means "down" (crouch).
	Y float64
	// JumpDown is true on the frame the jump button was pressed.
	JumpDown bool
	// JumpHeld is true while the jump button is held.
	JumpHeld bool
	// DashDown is true on the frame the dash button was pressed.
	DashDown bool
}

// InputSource produces frame input. Update is called once per rendered frame
// before the axis and button queries are read.
type InputSource interface {
	Update()
	HorizontalAxis() float64
	VerticalAxis() float64
	JumpDown() bool
	JumpHeld() bool
	DashDown() bool
}

// ReadFrameInput samples every query of src into a FrameInput.
func ReadFrameInput(src InputSource) FrameInput {
	if src == nil {
		return FrameInput{}
	}
	return FrameInput{
		X:        src.HorizontalAxis(),
		Y:        src.VerticalAxis(),
		JumpDown: src.JumpDown(),
		JumpHeld: src.JumpHeld(),
		DashDown: src.DashDown(),
	}
}
