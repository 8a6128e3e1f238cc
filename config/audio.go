package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSlash
	SoundUnready
	SoundHit
	SoundKill
	SoundSpark
	SoundOuch
	SoundAttack
)

// SoundConfig maps sound IDs to cue names and pitch
type SoundConfig struct {
	Names  map[SoundID]string  `yaml:"names"`
	Speeds map[SoundID]float64 `yaml:"speeds"`
}

var Sound SoundConfig

func defaultSound() SoundConfig {
	return SoundConfig{
		Names: map[SoundID]string{
			SoundSlash:   "slash",
			SoundUnready: "unready",
			SoundHit:     "hit",
			SoundKill:    "kill",
			SoundSpark:   "vrrp",
			SoundOuch:    "ouch",
			SoundAttack:  "attack",
		},
		Speeds: map[SoundID]float64{
			SoundUnready: 1.5,
			SoundSpark:   0.8,
		},
	}
}

// Name returns the cue name for id.
func (s SoundConfig) Name(id SoundID) string {
	return s.Names[id]
}

// Speed returns the playback speed for id, 1 when unset.
func (s SoundConfig) Speed(id SoundID) float64 {
	if v, ok := s.Speeds[id]; ok {
		return v
	}
	return 1
}
