package main

// animator eases a value from one point to another over a fixed number of
// frames. It is the external animator that drives Engine.SetCurrentValue.
type animator struct {
	from, to float64
	frames   int
	frame    int
}

func newAnimator(from, to float64, frames int) *animator {
	return &animator{from: from, to: to, frames: max(frames, 1)}
}

// retarget restarts the animation at from towards to.
func (a *animator) retarget(from, to float64) {
	a.from, a.to, a.frame = from, to, 0
}

// done reports whether the last frame has been produced.
func (a *animator) done() bool {
	return a.frame >= a.frames
}

// next advances one frame and returns the value for it. The last frame
// returns exactly to.
func (a *animator) next() float64 {
	if a.done() {
		return a.to
	}
	a.frame++
	if a.frame == a.frames {
		return a.to
	}
	t := easeInOut(float64(a.frame) / float64(a.frames))
	return a.from + (a.to-a.from)*t
}

// easeInOut is a cubic ease-in-out on [0, 1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
