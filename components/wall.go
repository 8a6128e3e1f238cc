package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// WallData is a static arena edge or spark box. Lines are degenerate boxes
// with zero width or height.
type WallData struct {
	Kind config.WallKind
	Rect gamemath.Rect
}

// Vertical reports whether a line wall runs along the y axis.
func (w *WallData) Vertical() bool {
	return w.Rect.Max.X-w.Rect.Min.X <= w.Rect.Max.Y-w.Rect.Min.Y
}

var Wall = donburi.NewComponentType[WallData]()
