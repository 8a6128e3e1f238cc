package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseBotDifficulty maps a flag value to a difficulty.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	for d := BotDifficultyEasy; d <= BotDifficultyHard; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return BotDifficultyNormal, false
}

// BotDifficultyConfig holds tuning values for the autopilot at one difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Ticks between target re-evaluations
	AttackReach   float64 // Fraction of SlashDistance at which to slash
	RetreatRange  float64 // Back off when an enemy is closer than this
	// HomeMargin keeps the bot this far inside the arena edge so the
	// Dark Presence never wakes.
	HomeMargin float64
	AimJitter  float64 // Radians of random error added to each slash
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 30, // 0.5 second reaction time
				AttackReach:   0.6,
				RetreatRange:  30,
				HomeMargin:    60,
				AimJitter:     0.35,
			},
			BotDifficultyNormal: {
				ReactionDelay: 15,
				AttackReach:   0.8,
				RetreatRange:  40,
				HomeMargin:    80,
				AimJitter:     0.15,
			},
			BotDifficultyHard: {
				ReactionDelay: 5, // Near-instant reaction
				AttackReach:   0.95,
				RetreatRange:  50,
				HomeMargin:    100,
				AimJitter:     0.02,
			},
		},
	}
}
