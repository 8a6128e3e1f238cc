package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DisplayConfig contains window and mixer settings for the desktop build
type DisplayConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
	DefaultVolumeIndex     int
	SampleRate             int
	// ZoomSpeed is how fast the camera widens to the outer bound, per second.
	ZoomSpeed float64

	ShakeDuration  float64
	ShakeMagnitude float64
	// FatalShake scales the shake for the last combo step and the strike.
	FatalShake float64

	TrailDuration float64
	FlashDuration float64
}

// Display is the global display configuration
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex:     3,
		SampleRate:             44100,
		ZoomSpeed:              2,
		ShakeDuration:          0.25,
		ShakeMagnitude:         6,
		FatalShake:             3,
		TrailDuration:          0.25,
		FlashDuration:          0.15,
	}
}

// Resolution returns the option at index, or the default when out of range.
func (d DisplayConfig) Resolution(index int) Resolution {
	if index < 0 || index >= len(d.Resolutions) {
		index = d.DefaultResolutionIndex
	}
	return d.Resolutions[index]
}

// Volume returns the step at index, or the default when out of range.
func (d DisplayConfig) Volume(index int) float64 {
	if index < 0 || index >= len(d.VolumeSteps) {
		index = d.DefaultVolumeIndex
	}
	return d.VolumeSteps[index]
}
