package tool

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/milieu/selection"
	"github.com/oomph-ac/milieu/world"
)

// State is what the tool is currently doing.
type State uint8

const (
	StateIdle State = iota
	StateMining
	StatePlacing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMining:
		return "mining"
	case StatePlacing:
		return "placing"
	}
	return "unknown"
}

// Editor is the part of the voxel store the tool edits.
type Editor interface {
	Reveal(pos cube.Pos) (*world.Block, bool)
	Put(pos cube.Pos, b *world.Block)
}

// Action describes an edit the tool made during a tick.
type Action struct {
	State State
	Pos   cube.Pos
}

// PlacedColour is the colour of blocks placed by the tool.
var PlacedColour = mgl32.Vec4{1, 1, 1, 1}

// Tool mines and places blocks at a fixed rate while its button is held.
type Tool struct {
	state    State
	clock    float64
	cooldown float64

	// Blocked reports positions blocks may not be placed at, such as inside the actor. May be nil.
	Blocked func(pos cube.Pos) bool
}

// New returns an idle tool that acts once every cooldown seconds.
func New(cooldown float64) *Tool {
	return &Tool{cooldown: cooldown}
}

// State returns the current state of the tool.
func (t *Tool) State() State {
	return t.state
}

// Press starts mining or placing. The first edit happens on the next tick.
func (t *Tool) Press(s State) {
	t.state = s
	t.clock = 0
}

// Release stops the tool.
func (t *Tool) Release() {
	t.state = StateIdle
}

// Tick advances the cooldown clock by dt and, once it has run out, edits the target and restarts the
// cooldown. ok is false if nothing was edited.
func (t *Tool) Tick(dt float64, target selection.Target, e Editor) (Action, bool) {
	t.clock -= dt
	if t.clock > 0 {
		return Action{}, false
	}

	switch t.state {
	case StateMining:
		if target.Solid != nil {
			e.Reveal(*target.Solid)
			t.clock += t.cooldown
			return Action{State: StateMining, Pos: *target.Solid}, true
		}
	case StatePlacing:
		if target.Adjacent != nil && (t.Blocked == nil || !t.Blocked(*target.Adjacent)) {
			e.Put(*target.Adjacent, world.NewBlock(0, PlacedColour))
			t.clock += t.cooldown
			return Action{State: StatePlacing, Pos: *target.Adjacent}, true
		}
	}
	// Without an edit the tool stays ready, but idle time does not bank extra edits.
	t.clock = 0
	return Action{}, false
}
