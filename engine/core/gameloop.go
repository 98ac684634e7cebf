package core

// GameLoop is the fixed-timestep accumulator. Frame time goes in, whole
// fixed steps come out and the remainder carries into the next frame. No
// time is ever dropped.
type GameLoop struct {
	FixedStep float64 // seconds per fixed update

	accumulator float64
}

// Accumulate adds frameTime to the accumulator
func (gl *GameLoop) Accumulate(frameTime float64) {
	gl.accumulator += frameTime
}

// Steps drains whole fixed steps from the accumulator, calling step for
// each and subtracting exactly FixedStep each time. It returns the number
// of steps run.
func (gl *GameLoop) Steps(step func(dt float64)) int {
	n := 0
	for gl.accumulator >= gl.FixedStep {
		step(gl.FixedStep)
		gl.accumulator -= gl.FixedStep
		n++
	}
	return n
}

// Accumulator returns the leftover time not yet consumed by a fixed step
func (gl *GameLoop) Accumulator() float64 {
	return gl.accumulator
}
