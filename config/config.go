package config

import "math"

// BodyTuning is the shared motion-model tuning for any moving body.
type BodyTuning struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	TopSpeed     float64 `yaml:"top_speed"`
	Quantize     float64 `yaml:"quantize"`
	Radius       float64 `yaml:"radius"`
	WallPadding  float64 `yaml:"wall_padding"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Body BodyTuning `yaml:"body"`

	// Cooldowns (seconds)
	SlashCooldown float64 `yaml:"slash_cooldown"`
	PauseTime     float64 `yaml:"pause_time"`
	FinishTime    float64 `yaml:"finish_time"`
	HitCooldown   float64 `yaml:"hit_cooldown"`

	// Slash geometry
	SlashDistance  float64 `yaml:"slash_distance"`
	SlashBoost     float64 `yaml:"slash_boost"`
	SlashRayOffset float64 `yaml:"slash_ray_offset"`
	SlashCapRadius float64 `yaml:"slash_cap_radius"`

	// Bottom layer switches to Run above TopSpeed * RunThreshold
	RunThreshold float64 `yaml:"run_threshold"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string     `yaml:"name"`
	Body        BodyTuning `yaml:"body"`
	HitCooldown float64    `yaml:"hit_cooldown"`

	// Animation strip
	FirstFrame int     `yaml:"first_frame"`
	LastFrame  int     `yaml:"last_frame"`
	FrameRate  float64 `yaml:"frame_rate"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig `yaml:"types"`

	// BlueMask orbit offset (radians)
	OrbitAngle float64 `yaml:"orbit_angle"`

	// RedMask sidestep: fires between DashBandMin*SlashDistance and SlashDistance
	DashBandMin float64 `yaml:"dash_band_min"`
	DashAngle   float64 `yaml:"dash_angle"`
	DashImpulse float64 `yaml:"dash_impulse"`

	// BlackMask charge
	ChargeAlignment float64 `yaml:"charge_alignment"`
	ChargeImpulse   float64 `yaml:"charge_impulse"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Enemy vs enemy separation
	EnemyPush     float64 `yaml:"enemy_push"`
	EnemyNearPush float64 `yaml:"enemy_near_push"`
	EnemyNear     float64 `yaml:"enemy_near"`

	// Player vs enemy knockback while the enemy is still cooling down
	Knockback float64 `yaml:"knockback"`
}

// PhysicsConfig contains global motion model constants
type PhysicsConfig struct {
	// Velocities are displacements per reference frame
	ReferenceFPS float64 `yaml:"reference_fps"`

	RunawayFactor float64 `yaml:"runaway_factor"`
	OvershootBase float64 `yaml:"overshoot_base"`
	CruiseBase    float64 `yaml:"cruise_base"`
	IdleBase      float64 `yaml:"idle_base"`
}

// ArenaConfig describes the inner arena and the expanded outer bound.
type ArenaConfig struct {
	InnerWidth  float64 `yaml:"inner_width"`
	InnerHeight float64 `yaml:"inner_height"`
	OuterWidth  float64 `yaml:"outer_width"`
	OuterHeight float64 `yaml:"outer_height"`

	// Optional TMX layout; empty uses the embedded default.
	LayoutPath string `yaml:"layout_path"`
}

// SpawnConfig contains wave spawner configuration
type SpawnConfig struct {
	Waves [][]EnemyKind `yaml:"waves"`

	// Random composition bands, checked in order against a uniform draw.
	BlackBand float64 `yaml:"black_band"`
	RedBand   float64 `yaml:"red_band"`
	BlueBand  float64 `yaml:"blue_band"`

	BaseDistance  float64 `yaml:"base_distance"`
	WaveDistance  float64 `yaml:"wave_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
	JitterMin     float64 `yaml:"jitter_min"`
	JitterSpread  float64 `yaml:"jitter_spread"`
	RotateAfter   int     `yaml:"rotate_after"`
	FollowAfter   int     `yaml:"follow_after"`
	HorizontalFit float64 `yaml:"horizontal_fit"`
}

// PhaseConfig contains game phase timings (seconds)
type PhaseConfig struct {
	FadeDuration         float64 `yaml:"fade_duration"`
	GameOverDuration     float64 `yaml:"game_over_duration"`
	DarkPresenceDuration float64 `yaml:"dark_presence_duration"`
	AttackDuration       float64 `yaml:"attack_duration"`

	// Banner is how long the combo callout stays up; FatalBanner for the last rung.
	BannerDuration      float64 `yaml:"banner_duration"`
	FatalBannerDuration float64 `yaml:"fatal_banner_duration"`
}

// AnimationDef is a frame strip on a sprite sheet.
type AnimationDef struct {
	First  int     `yaml:"first"`
	Last   int     `yaml:"last"`
	Offset int     `yaml:"offset"`
	Speed  float64 `yaml:"speed"`
}

// AnimationConfig holds the player's layered frame strips.
type AnimationConfig struct {
	Top    map[TopState]AnimationDef    `yaml:"top"`
	Bottom map[BottomState]AnimationDef `yaml:"bottom"`

	// Run strips speed up with velocity
	TopRunBase    float64 `yaml:"top_run_base"`
	TopRunGain    float64 `yaml:"top_run_gain"`
	TopIdleSteady float64 `yaml:"top_idle_steady"`
	BottomRunGain float64 `yaml:"bottom_run_gain"`
	BottomKickoff float64 `yaml:"bottom_kickoff"`
}

// Config is the full tuning surface, used for YAML overrides.
type Config struct {
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Combat    CombatConfig    `yaml:"combat"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Arena     ArenaConfig     `yaml:"arena"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Phase     PhaseConfig     `yaml:"phase"`
	Animation AnimationConfig `yaml:"animation"`
	Sound     SoundConfig     `yaml:"sound"`
}

var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Spawn SpawnConfig
var Phases PhaseConfig
var Animation AnimationConfig

func init() {
	Apply(Default())
}

// Default returns the stock tuning.
func Default() Config {
	c := Config{}

	c.Physics = PhysicsConfig{
		ReferenceFPS:  60,
		RunawayFactor: 4,
		OvershootBase: 0.95,
		CruiseBase:    0.4,
		IdleBase:      0.1,
	}

	c.Player = PlayerConfig{
		Body: BodyTuning{
			Acceleration: 12,
			Deceleration: 4,
			TopSpeed:     2,
			Quantize:     0.05,
			Radius:       15,
			WallPadding:  5,
		},
		SlashCooldown:  2.5,
		PauseTime:      0.25,
		FinishTime:     1.0,
		HitCooldown:    1.0,
		SlashDistance:  120,
		SlashBoost:     4,
		SlashRayOffset: 7,
		SlashCapRadius: 15,
		RunThreshold:   0.25,
	}

	c.Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			Dummy: {
				Name:        "Dummy",
				Body:        BodyTuning{Radius: 15, WallPadding: 5},
				HitCooldown: 1.0,
			},
			GrayMask: {
				Name:        "GrayMask",
				Body:        BodyTuning{Acceleration: 2.5, Deceleration: 1.25, TopSpeed: 0.35, Radius: 15, WallPadding: 5},
				HitCooldown: 1.0,
				LastFrame:   3,
				FrameRate:   6,
			},
			BlueMask: {
				Name:        "BlueMask",
				Body:        BodyTuning{Acceleration: 2.0, Deceleration: 0.75, TopSpeed: 0.75, Radius: 15, WallPadding: 5},
				HitCooldown: 1.0,
				LastFrame:   3,
				FrameRate:   6,
			},
			RedMask: {
				Name:        "RedMask",
				Body:        BodyTuning{Acceleration: 2.25, Deceleration: 0.5, TopSpeed: 1.5, Radius: 15, WallPadding: 5},
				HitCooldown: 1.0,
				LastFrame:   3,
				FrameRate:   6,
			},
			BlackMask: {
				Name:        "BlackMask",
				Body:        BodyTuning{Acceleration: 0.5, Deceleration: 1.5, TopSpeed: 3.0, Radius: 18, WallPadding: 3},
				HitCooldown: 1.0,
				LastFrame:   3,
				FrameRate:   6,
			},
		},
		OrbitAngle:      0.25,
		DashBandMin:     0.8,
		DashAngle:       3.25 * math.Pi / 2,
		DashImpulse:     8,
		ChargeAlignment: 0.4,
		ChargeImpulse:   4,
	}

	c.Combat = CombatConfig{
		EnemyPush:     5,
		EnemyNearPush: 0.25,
		EnemyNear:     100,
		Knockback:     60,
	}

	c.Arena = ArenaConfig{
		InnerWidth:  1280,
		InnerHeight: 720,
		OuterWidth:  2560,
		OuterHeight: 1440,
	}

	c.Spawn = SpawnConfig{
		Waves:         DefaultWaves(),
		BlackBand:     0.1,
		RedBand:       0.3,
		BlueBand:      0.5,
		BaseDistance:  45,
		WaveDistance:  20,
		MaxDistance:   200,
		JitterMin:     0.8,
		JitterSpread:  0.4,
		RotateAfter:   3,
		FollowAfter:   6,
		HorizontalFit: 1.7,
	}

	c.Phase = PhaseConfig{
		FadeDuration:         1.0,
		GameOverDuration:     2.0,
		DarkPresenceDuration: 6.0,
		AttackDuration:       0.5,
		BannerDuration:       1.0,
		FatalBannerDuration:  4.0,
	}

	c.Animation = AnimationConfig{
		Top: map[TopState]AnimationDef{
			TopIdle:   {First: 0, Last: 1, Offset: 1, Speed: 3},
			TopSlash:  {First: 2, Last: 2},
			TopFinish: {First: 3, Last: 3},
			TopDead:   {First: 4, Last: 4},
		},
		Bottom: map[BottomState]AnimationDef{
			BottomIdle: {First: 0, Last: 0},
			BottomRun:  {First: 1, Last: 4, Offset: 2, Speed: 3},
		},
		TopRunBase:    1.5,
		TopRunGain:    2.5,
		BottomRunGain: 6,
		BottomKickoff: 9,
		TopIdleSteady: 2,
	}

	c.Sound = defaultSound()

	return c
}

// Apply installs c as the active tuning.
func Apply(c Config) {
	Player = c.Player
	Enemy = c.Enemy
	Combat = c.Combat
	Physics = c.Physics
	Arena = c.Arena
	Spawn = c.Spawn
	Phases = c.Phase
	Animation = c.Animation
	Sound = c.Sound
}

// Current snapshots the active tuning.
func Current() Config {
	return Config{
		Player:    Player,
		Enemy:     Enemy,
		Combat:    Combat,
		Physics:   Physics,
		Arena:     Arena,
		Spawn:     Spawn,
		Phase:     Phases,
		Animation: Animation,
		Sound:     Sound,
	}
}

// DefaultWaves is the curated opening sequence.
func DefaultWaves() [][]EnemyKind {
	return [][]EnemyKind{
		{Dummy},
		{Dummy, Dummy},
		{GrayMask},
		{GrayMask, GrayMask, GrayMask},
		{BlueMask},
		{BlueMask, BlueMask, BlueMask},
		{GrayMask, BlueMask, GrayMask, BlueMask, GrayMask, BlueMask},
		{GrayMask, GrayMask, RedMask},
		{GrayMask, GrayMask, RedMask, GrayMask, GrayMask, RedMask},
		{GrayMask, BlueMask, RedMask, GrayMask, BlueMask, RedMask, GrayMask, BlueMask, RedMask},
		{BlackMask},
		{BlackMask, BlackMask, BlackMask, BlackMask},
		{RedMask, BlackMask, RedMask, BlackMask, RedMask, BlackMask, RedMask, BlackMask, RedMask},
		{BlueMask, BlackMask, BlueMask, BlackMask, BlueMask, BlackMask, BlueMask, BlackMask, BlueMask},
	}
}
