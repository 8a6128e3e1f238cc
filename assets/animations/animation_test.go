package animations

import (
	"testing"

	"github.com/automoto/bushido-blazer/config"
	"github.com/stretchr/testify/assert"
)

func TestAnimationStartsAtOffsetAndLoops(t *testing.T) {
	a := NewAnimation(config.AnimationDef{First: 0, Last: 1, Offset: 1, Speed: 3})
	assert.Equal(t, 1, a.Frame())
	assert.Equal(t, 1.0, a.Progress())

	a.Update(1.0 / 3)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
	assert.Zero(t, a.Progress())
}

func TestZeroSpeedHoldsFrame(t *testing.T) {
	a := NewAnimation(config.AnimationDef{First: 2, Last: 2})
	a.Update(10)
	assert.Equal(t, 2, a.Frame())
	assert.Zero(t, a.Progress(), "single frame strip")
}

func TestOffsetPastStripWraps(t *testing.T) {
	a := NewAnimation(config.AnimationDef{First: 2, Last: 3, Offset: 5, Speed: 1})
	assert.Equal(t, 2, a.Frame())

	a.Play(config.AnimationDef{First: 4, Last: 6, Speed: 2})
	assert.Equal(t, 4, a.Frame())
	assert.False(t, a.Looped)
}
