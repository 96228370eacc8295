package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/milieu/actor"
	"github.com/oomph-ac/milieu/session"
	"github.com/oomph-ac/milieu/tool"
)

// script is the input played back by the headless host: the actor tunnels forward, mining what is in front
// of it, and turns every few seconds.
type script struct {
	walking bool
	mining  bool
}

func (sc *script) next(tick int) session.Input {
	var in session.Input
	if !sc.walking {
		sc.walking = true
		in.Press = append(in.Press, actor.KeyMoveForward)
	}

	switch {
	case tick%120 == 0 && !sc.mining:
		sc.mining = true
		in.Tool = tool.StateMining
	case tick%120 == 90 && sc.mining:
		sc.mining = false
		in.ReleaseTool = true
	}
	if tick%600 == 300 {
		// A quarter turn: Look divides by 360 and scales by pi/4.
		in.Look = mgl32.Vec2{720, 0}
	}
	return in
}
