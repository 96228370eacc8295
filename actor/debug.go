package actor

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// AxisDebug is the display text for one axis.
type AxisDebug struct {
	Position  string
	Velocity  string
	Collision string
}

func formatCollision(pos *cube.Pos) string {
	if pos == nil {
		return "none"
	}
	return fmt.Sprintf("(%d, %d, %d)", pos[0], pos[1], pos[2])
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
