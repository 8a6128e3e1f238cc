package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseFadeout
	PhasePlay
	PhaseGameOver
	PhaseDarkPresenceAttack
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseFadeout:
		return "Fadeout"
	case PhasePlay:
		return "Play"
	case PhaseGameOver:
		return "GameOver"
	case PhaseDarkPresenceAttack:
		return "DarkPresenceAttack"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Combo is the player hit ladder. Fatal ends the run.
type Combo int

const (
	ComboZero Combo = iota
	ComboFirst
	ComboSecond
	ComboThird
	ComboFatal
)

// Next advances one rung, saturating at Fatal.
func (c Combo) Next() Combo {
	if c >= ComboFatal {
		return ComboFatal
	}
	return c + 1
}

func (c Combo) String() string {
	switch c {
	case ComboZero:
		return "Zero"
	case ComboFirst:
		return "First"
	case ComboSecond:
		return "Second"
	case ComboThird:
		return "Third"
	case ComboFatal:
		return "Fatal"
	}
	return fmt.Sprintf("Combo(%d)", int(c))
}

// TopState drives the player's upper-body layer.
type TopState int

const (
	TopIdle TopState = iota
	TopSlash
	TopFinish
	TopDead
)

func (s TopState) String() string {
	switch s {
	case TopIdle:
		return "Idle"
	case TopSlash:
		return "Slash"
	case TopFinish:
		return "Finish"
	case TopDead:
		return "Dead"
	}
	return fmt.Sprintf("TopState(%d)", int(s))
}

// BottomState drives the player's legs layer.
type BottomState int

const (
	BottomIdle BottomState = iota
	BottomRun
)

func (s BottomState) String() string {
	if s == BottomRun {
		return "Run"
	}
	return "Idle"
}

// Direction is a horizontal orientation.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "Right"
	}
	return "Left"
}

// EnemyKind selects an enemy's look and steering behaviour.
type EnemyKind int

const (
	Dummy EnemyKind = iota
	GrayMask
	BlueMask
	RedMask
	BlackMask
)

var enemyKindNames = map[EnemyKind]string{
	Dummy:     "Dummy",
	GrayMask:  "GrayMask",
	BlueMask:  "BlueMask",
	RedMask:   "RedMask",
	BlackMask: "BlackMask",
}

func (k EnemyKind) String() string {
	if name, ok := enemyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// ParseEnemyKind resolves a kind by name.
func ParseEnemyKind(name string) (EnemyKind, error) {
	for k, n := range enemyKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", name)
}

func (k EnemyKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *EnemyKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseEnemyKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// WallKind distinguishes containment edges from spark boxes.
type WallKind int

const (
	WallLine WallKind = iota
	WallBox
)
