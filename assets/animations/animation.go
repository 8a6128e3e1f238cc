package animations

import "github.com/automoto/bushido-blazer/config"

// Animation is a looping play head over a frame strip. Speed is in frames per
// second; a zero speed holds the current frame.
type Animation struct {
	First   int
	Last    int
	Offset  int
	Speed   float64
	elapsed float64
	frame   int
	Looped  bool
}

func (a *Animation) Update(dt float64) {
	if a.Speed <= 0 {
		a.elapsed = 0
		return
	}
	a.elapsed += dt
	rate := 1 / a.Speed
	for a.elapsed >= rate {
		a.elapsed -= rate
		a.frame++
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is the play head normalized over the strip, 0 for single frames.
func (a *Animation) Progress() float64 {
	if a.Last <= a.First {
		return 0
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

// Restart jumps to First+Offset, wrapped into the strip.
func (a *Animation) Restart() {
	a.elapsed = 0
	a.Looped = false
	a.frame = a.First + a.Offset
	if a.frame > a.Last {
		a.frame = a.First
	}
}

// Play switches to def and restarts it.
func (a *Animation) Play(def config.AnimationDef) {
	a.First = def.First
	a.Last = def.Last
	a.Offset = def.Offset
	a.Speed = def.Speed
	a.Restart()
}

func NewAnimation(def config.AnimationDef) *Animation {
	a := &Animation{}
	a.Play(def)
	return a
}
