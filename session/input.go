package session

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/milieu/actor"
	"github.com/oomph-ac/milieu/tool"
)

// Input is everything the host forwards to a session in one tick. The zero value is no input.
type Input struct {
	// Press and Release list the movement keys whose state changed since the last tick.
	Press   []actor.Key
	Release []actor.Key

	// Look is the relative mouse movement.
	Look mgl32.Vec2

	// Tool starts mining or placing when it is not tool.StateIdle. ReleaseTool stops the tool and is
	// handled before Tool.
	Tool        tool.State
	ReleaseTool bool

	DropPlayer bool
	DropCamera bool
}

func (s *Session) handleInput(in Input) {
	for _, k := range in.Release {
		s.actor.Release(k)
	}
	for _, k := range in.Press {
		s.actor.Press(k)
	}
	if in.Look != (mgl32.Vec2{}) {
		s.actor.Look(in.Look[0], in.Look[1])
	}

	if in.ReleaseTool {
		s.tool.Release()
	}
	if in.Tool != tool.StateIdle {
		s.tool.Press(in.Tool)
	}

	if in.DropCamera {
		s.actor.DropCamera()
		s.logger.Debug("toggled free camera", "noclip", s.actor.State.NoClip)
	}
	if in.DropPlayer {
		s.actor.DropPlayer()
		s.logger.Debug("dropped player at camera", "pos", s.actor.Position())
	}
}
